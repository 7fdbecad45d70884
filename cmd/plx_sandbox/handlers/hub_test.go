package handlers_test

import (
	"net/http"
	"testing"

	httptestutil "github.com/polyaxon/plx/internal/testutils/http"
	"github.com/polyaxon/plx/pkg/api/types/hub"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
)

const modelsRoot = "/api/v1/orgs/acme/models"

func TestModels(t *testing.T) {
	t.Run("tag in the name is moved into tag", func(t *testing.T) {
		e, _ := newServer(t, "")
		created := mustCreate[hub.Model](t, e, modelsRoot, hub.Model{Name: "resnet:v2", Framework: "torch"})
		if created.Name != "resnet" || created.Tag != "v2" {
			t.Errorf("unexpected model: %+v", created)
		}

		for _, target := range []string{modelsRoot + "/resnet", modelsRoot + "/resnet:v1"} {
			resp := httptestutil.Get(e, target)
			expectStatus(t, resp, http.StatusOK)
			if got := httptestutil.Decode[hub.Model](t, resp); !got.Equal(created) {
				t.Errorf("%s:\n===actual===\n%+v\n===expected===\n%+v", target, got, created)
			}
		}
	})

	t.Run("conflicting tags are bad request", func(t *testing.T) {
		e, _ := newServer(t, "")
		resp := httptestutil.Post(e, modelsRoot, `{"name": "resnet:v2", "tag": "v3"}`)
		expectStatus(t, resp, http.StatusBadRequest)
	})

	t.Run("patch updates the model", func(t *testing.T) {
		e, _ := newServer(t, "")
		mustCreate[hub.Model](t, e, modelsRoot, hub.Model{Name: "resnet", Framework: "torch"})

		resp := httptestutil.Patch(e, modelsRoot+"/resnet", `{"description": "image classifier"}`)
		expectStatus(t, resp, http.StatusOK)
		got := httptestutil.Decode[hub.Model](t, resp)
		if got.Description != "image classifier" || got.Framework != "torch" {
			t.Errorf("unexpected model: %+v", got)
		}
	})

	t.Run("deleted model is not found", func(t *testing.T) {
		e, _ := newServer(t, "")
		mustCreate[hub.Model](t, e, modelsRoot, hub.Model{Name: "resnet"})

		expectStatus(t, httptestutil.Delete(e, modelsRoot+"/resnet"), http.StatusNoContent)
		expectStatus(t, httptestutil.Get(e, modelsRoot+"/resnet"), http.StatusNotFound)

		got := httptestutil.Decode[pagination.List[hub.Model]](t, httptestutil.Get(e, modelsRoot))
		if got.Count != 0 {
			t.Errorf("models are left: %+v", got)
		}
	})
}

func TestComponents(t *testing.T) {
	e, _ := newServer(t, "")
	created := mustCreate[hub.Component](t, e, "/api/v1/orgs/acme/components", hub.Component{Name: "tensorboard"})

	resp := httptestutil.Get(e, "/api/v1/orgs/acme/components/tensorboard")
	expectStatus(t, resp, http.StatusOK)
	if got := httptestutil.Decode[hub.Component](t, resp); !got.Equal(created) {
		t.Errorf("got component:\n===actual===\n%+v\n===expected===\n%+v", got, created)
	}

	expectStatus(
		t, httptestutil.Post(e, "/api/v1/orgs/acme/components", `{"name": "tensorboard"}`),
		http.StatusConflict,
	)
	expectStatus(t, httptestutil.Delete(e, "/api/v1/orgs/acme/components/tensorboard"), http.StatusNoContent)
	expectStatus(t, httptestutil.Get(e, "/api/v1/orgs/acme/components/tensorboard"), http.StatusNotFound)
}
