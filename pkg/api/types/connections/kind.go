package connections

import (
	"encoding/json"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
)

// Kind is a kind of connection.
type Kind string

const (
	HostPath    Kind = "host_path"
	VolumeClaim Kind = "volume_claim"
	GCS         Kind = "gcs"
	S3          Kind = "s3"
	WASB        Kind = "wasb"
	Registry    Kind = "registry"
	Git         Kind = "git"
	AWS         Kind = "aws"
	GCP         Kind = "gcp"
	Azure       Kind = "azure"
	MySQL       Kind = "mysql"
	Postgres    Kind = "postgres"
	Redis       Kind = "redis"
	Mongo       Kind = "mongo"
	FTP         Kind = "ftp"
	HTTP        Kind = "http"
	GRPC        Kind = "grpc"
	HDFS        Kind = "hdfs"
	SSH         Kind = "ssh"
	Slack       Kind = "slack"
	Discord     Kind = "discord"
	Mattermost  Kind = "mattermost"
	PagerDuty   Kind = "pagerduty"
	Webhook     Kind = "webhook"
	Custom      Kind = "custom"
)

var knownKinds = []Kind{
	HostPath, VolumeClaim, GCS, S3, WASB, Registry, Git,
	AWS, GCP, Azure, MySQL, Postgres, Redis, Mongo,
	FTP, HTTP, GRPC, HDFS, SSH,
	Slack, Discord, Mattermost, PagerDuty, Webhook, Custom,
}

func (k Kind) String() string {
	return string(k)
}

func ParseKind(s string) (Kind, error) {
	for _, k := range knownKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", apierr.Invalid("unknown connection kind: %s", s)
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*k = ""
		return nil
	}
	kind, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// IsBucket reports the kind is an object storage.
func (k Kind) IsBucket() bool {
	switch k {
	case GCS, S3, WASB:
		return true
	}
	return false
}

// IsArtifactStore reports the kind can hold artifacts of runs.
func (k Kind) IsArtifactStore() bool {
	return k.IsBucket() || k == HostPath || k == VolumeClaim
}

// IsNotifier reports the kind can be used for notifications.
func (k Kind) IsNotifier() bool {
	switch k {
	case Slack, Discord, Mattermost, PagerDuty, Webhook:
		return true
	}
	return false
}

// IsHost reports the kind is reached by URL.
func (k Kind) IsHost() bool {
	switch k {
	case Registry, HTTP, GRPC, FTP, HDFS, SSH,
		MySQL, Postgres, Redis, Mongo,
		Slack, Discord, Mattermost, PagerDuty, Webhook:
		return true
	}
	return false
}
