package connections_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/polyaxon/plx/pkg/api/types/connections"
	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/utils/pointer"
	"github.com/polyaxon/plx/pkg/utils/try"
	corev1 "k8s.io/api/core/v1"
)

func TestConnectionSchema_JSON(t *testing.T) {
	type then struct {
		schema     connections.ConnectionSchema
		schemaKind string
	}

	for name, testcase := range map[string]struct {
		when string
		then then
	}{
		"bucket": {
			when: `{"bucket_connection": {"kind": "bucket", "bucket": "s3://data"}}`,
			then: then{
				schema: connections.SchemaOf(connections.BucketConnection{Kind: "bucket", Bucket: "s3://data"}),
				schemaKind: "bucket",
			},
		},
		"claim": {
			when: `{"claim_connection": {"volume_claim": "pvc", "mount_path": "/data", "read_only": true}}`,
			then: then{
				schema: connections.SchemaOf(connections.ClaimConnection{
					VolumeClaim: "pvc", MountPath: "/data", ReadOnly: pointer.Ref(true),
				}),
				schemaKind: "volume_claim",
			},
		},
		"host path": {
			when: `{"host_path_connection": {"host_path": "/mnt/data", "mount_path": "/data"}}`,
			then: then{
				schema:     connections.SchemaOf(connections.HostPathConnection{HostPath: "/mnt/data", MountPath: "/data"}),
				schemaKind: "host_path",
			},
		},
		"host": {
			when: `{"host_connection": {"url": "registry.invalid:5000", "insecure": true}}`,
			then: then{
				schema:     connections.SchemaOf(connections.HostConnection{URL: "registry.invalid:5000", Insecure: pointer.Ref(true)}),
				schemaKind: "host",
			},
		},
		"git": {
			when: `{"git_connection": {"url": "https://git.invalid/repo", "revision": "main", "flags": ["--depth=1"]}}`,
			then: then{
				schema: connections.SchemaOf(connections.GitConnection{
					URL: "https://git.invalid/repo", Revision: "main", Flags: []string{"--depth=1"},
				}),
				schemaKind: "git",
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			var actual connections.ConnectionSchema
			if err := json.Unmarshal([]byte(testcase.when), &actual); err != nil {
				t.Fatal(err)
			}
			if !actual.Equal(testcase.then.schema) {
				t.Errorf("unmatch: (actual, expected) = (%s, %s)", actual, testcase.then.schema)
			}
			if err := actual.Validate(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if v := actual.Variant(); v == nil || v.SchemaKind() != testcase.then.schemaKind {
				t.Errorf("unexpected variant: %+v", v)
			}

			again := try.To(json.Marshal(actual)).OrFatal(t)
			var reread connections.ConnectionSchema
			if err := json.Unmarshal(again, &reread); err != nil {
				t.Fatal(err)
			}
			if !reread.Equal(actual) {
				t.Errorf("not stable after marshal: %s", again)
			}
		})
	}
}

func TestConnectionSchema_Validate(t *testing.T) {
	for name, when := range map[string]connections.ConnectionSchema{
		"empty": {},
		"two variants": {
			BucketConnection: &connections.BucketConnection{Bucket: "s3://x"},
			GitConnection:    &connections.GitConnection{URL: "https://git.invalid/x"},
		},
		"bucket without bucket": connections.SchemaOf(connections.BucketConnection{}),
		"bucket with wrong kind": connections.SchemaOf(connections.BucketConnection{
			Kind: "git", Bucket: "s3://x",
		}),
		"claim with relative mount path": connections.SchemaOf(connections.ClaimConnection{
			VolumeClaim: "pvc", MountPath: "data",
		}),
		"host path with relative host path": connections.SchemaOf(connections.HostPathConnection{
			HostPath: "mnt", MountPath: "/data",
		}),
		"host without host": connections.SchemaOf(connections.HostConnection{URL: "http://"}),
		"git with bad flag": connections.SchemaOf(connections.GitConnection{
			URL: "https://git.invalid/x", Flags: []string{"depth=1"},
		}),
	} {
		t.Run("it rejects "+name, func(t *testing.T) {
			if err := when.Validate(); !errors.Is(err, apierr.ErrInvalid) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	t.Run("Variant of empty schema is nil", func(t *testing.T) {
		if v := (connections.ConnectionSchema{}).Variant(); v != nil {
			t.Errorf("unexpected variant: %+v", v)
		}
	})
}

func TestConnectionSchema_CompatibleWith(t *testing.T) {
	bucket := func(b string) connections.ConnectionSchema {
		return connections.SchemaOf(connections.BucketConnection{Bucket: b})
	}

	for name, testcase := range map[string]struct {
		schema connections.ConnectionSchema
		kind   connections.Kind
		ok     bool
	}{
		"s3 bucket for s3":        {bucket("s3://x"), connections.S3, true},
		"gs bucket for gcs":       {bucket("gs://x"), connections.GCS, true},
		"wasbs bucket for wasb":   {bucket("wasbs://c@a.blob.core.windows.net"), connections.WASB, true},
		"plain bucket for gcs":    {bucket("x"), connections.GCS, true},
		"s3 bucket for gcs":       {bucket("s3://x"), connections.GCS, false},
		"bucket for volume claim": {bucket("s3://x"), connections.VolumeClaim, false},
		"bucket for custom":       {bucket("s3://x"), connections.Custom, true},
		"claim for volume claim": {
			connections.SchemaOf(connections.ClaimConnection{VolumeClaim: "pvc", MountPath: "/d"}),
			connections.VolumeClaim, true,
		},
		"host path for host path": {
			connections.SchemaOf(connections.HostPathConnection{HostPath: "/h", MountPath: "/d"}),
			connections.HostPath, true,
		},
		"host for registry": {
			connections.SchemaOf(connections.HostConnection{URL: "https://registry.invalid"}),
			connections.Registry, true,
		},
		"host for slack": {
			connections.SchemaOf(connections.HostConnection{URL: "https://hooks.slack.invalid/x"}),
			connections.Slack, true,
		},
		"host for git": {
			connections.SchemaOf(connections.HostConnection{URL: "https://git.invalid"}),
			connections.Git, false,
		},
		"git for git": {
			connections.SchemaOf(connections.GitConnection{URL: "https://git.invalid/x"}),
			connections.Git, true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := testcase.schema.CompatibleWith(testcase.kind)
			if testcase.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !testcase.ok && !errors.Is(err, apierr.ErrInvalid) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConnectionResponse(t *testing.T) {
	t.Run("it is read from api json", func(t *testing.T) {
		body := `{
			"uuid": "f1e2d3",
			"name": "artifacts",
			"description": "artifacts store",
			"tags": ["a", "b"],
			"created_at": "2023-05-01T00:00:00Z",
			"frozen": false,
			"disabled": false,
			"deleted": false,
			"kind": "s3"
		}`
		var actual connections.ConnectionResponse
		if err := json.Unmarshal([]byte(body), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.UUID != "f1e2d3" || actual.Kind != connections.S3 ||
			actual.Frozen == nil || *actual.Frozen ||
			actual.CreatedAt == nil || len(actual.Tags) != 2 {
			t.Errorf("unexpected: %+v", actual)
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		var actual connections.ConnectionResponse
		err := json.Unmarshal([]byte(`{"name": "x", "kind": "quantum"}`), &actual)
		if !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Validate checks schema against kind", func(t *testing.T) {
		c := connections.ConnectionResponse{
			Name: "artifacts", Kind: connections.S3,
			Schema: pointer.Ref(connections.SchemaOf(connections.GitConnection{URL: "https://git.invalid/x"})),
		}
		if err := c.Validate(); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestConnectionType(t *testing.T) {
	valid := connections.ConnectionType{
		Name: "artifacts",
		Kind: connections.S3,
		Schema: pointer.Ref(connections.SchemaOf(
			connections.BucketConnection{Bucket: "s3://artifacts"},
		)),
		Secret: &connections.ConnectionResource{Name: "aws-secret"},
		Env:    []corev1.EnvVar{{Name: "AWS_REGION", Value: "us-east-1"}},
	}

	t.Run("valid connection", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("store kind without schema", func(t *testing.T) {
		c := valid
		c.Schema = nil
		if err := c.Validate(); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("notifier kind without schema", func(t *testing.T) {
		c := connections.ConnectionType{Name: "slack", Kind: connections.Slack}
		if err := c.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("secret with relative mount path", func(t *testing.T) {
		c := valid
		c.Secret = &connections.ConnectionResource{Name: "s", MountPath: "relative"}
		if err := c.Validate(); !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Response carries metadata", func(t *testing.T) {
		r := valid.Response()
		expected := connections.ConnectionResponse{
			Name: "artifacts", Kind: connections.S3, Schema: valid.Schema,
		}
		if !r.Equal(expected) {
			t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", r, expected)
		}
	})

	t.Run("Equal compares env semantically", func(t *testing.T) {
		other := valid
		other.Env = []corev1.EnvVar{{Name: "AWS_REGION", Value: "us-east-1"}}
		if !valid.Equal(other) {
			t.Error("same connections are not equal")
		}
		other.Env = []corev1.EnvVar{{Name: "AWS_REGION", Value: "eu-west-1"}}
		if valid.Equal(other) {
			t.Error("different env are equal")
		}
	})
}
