package hub_test

import (
	"encoding/json"
	"errors"
	"testing"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/hub"
	"github.com/polyaxon/plx/pkg/utils/pointer"
)

func TestModel(t *testing.T) {
	t.Run("it is read from api json", func(t *testing.T) {
		body := `{"uuid": "m1", "name": "resnet", "tag": "v2", "framework": "pytorch", "tags": ["vision", "cnn"], "disabled": false}`
		var actual hub.Model
		if err := json.Unmarshal([]byte(body), &actual); err != nil {
			t.Fatal(err)
		}
		expected := hub.Model{
			UUID: "m1", Name: "resnet", Tag: "v2", Framework: "pytorch",
			Tags: []string{"cnn", "vision"}, Disabled: pointer.Ref(false),
		}
		if !actual.Equal(expected) {
			t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", actual, expected)
		}
	})

	t.Run("Normalize splits tag from name", func(t *testing.T) {
		actual := hub.Model{Name: "resnet:v1"}.Normalize()
		if actual.Name != "resnet" || actual.Tag != "v1" {
			t.Errorf("unexpected: %+v", actual)
		}
	})

	t.Run("Validate rejects conflicting tags", func(t *testing.T) {
		err := hub.Model{Name: "resnet:v1", Tag: "v2"}.Validate()
		if !errors.Is(err, apierr.ErrInvalid) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Validate accepts versioned name", func(t *testing.T) {
		if err := (hub.Model{Name: "resnet:v1"}).Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestComponent(t *testing.T) {
	var actual hub.ListComponentsResponse
	body := `{"count": 1, "results": [{"uuid": "c1", "name": "tensorboard", "live": true}], "next": "http://x/?offset=1"}`
	if err := json.Unmarshal([]byte(body), &actual); err != nil {
		t.Fatal(err)
	}
	if !actual.HasNext() || len(actual.Results) != 1 || !*actual.Results[0].Live {
		t.Errorf("unexpected: %+v", actual)
	}
	if err := (hub.Component{Name: "Bad Name"}).Validate(); !errors.Is(err, apierr.ErrInvalid) {
		t.Errorf("unexpected error: %v", err)
	}
}
