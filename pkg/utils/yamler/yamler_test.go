package yamler_test

import (
	"testing"

	"github.com/polyaxon/plx/pkg/utils/yamler"
)

func TestEncode(t *testing.T) {

	testee := yamler.Map(
		yamler.Entry(yamler.Text("key1", yamler.WithHeadComment("comment1...\ncomment2...")), yamler.Text("value 1")),
		yamler.Entry(yamler.Text("key2"), yamler.Bool(true)),
		yamler.Entry(yamler.Text("key3"), yamler.Bool(false)),
		yamler.Entry(yamler.Text("key4"), yamler.Number(42)),
		yamler.Entry(yamler.Text("key4.2"), yamler.Number(4.2)),
		yamler.Entry(yamler.Text("key5"), yamler.Map(
			yamler.Entry(yamler.Text("child1", yamler.WithHeadComment("comment on child")), yamler.Text("child value 1: with colon")),
		)),
		yamler.Entry(
			yamler.Text("key6"),
			yamler.Seq(
				yamler.Text("abc"),
				yamler.Bool(true),
				yamler.Number(123),
			),
		),
		yamler.Entry(yamler.Text("key7"), yamler.FlowSeq(yamler.Number(1), yamler.Number(2))),
		yamler.Entry(yamler.Text("key8"), yamler.Null()),
	)

	actual, err := yamler.Encode(testee)
	if err != nil {
		t.Fatal(err)
	}

	expected := `# comment1...
# comment2...
key1: value 1
key2: true
key3: false
key4: 42
key4.2: 4.2
key5:
  # comment on child
  child1: 'child value 1: with colon'
key6:
  - abc
  - true
  - 123
key7: [1, 2]
key8: null
`
	if string(actual) != expected {
		t.Errorf("unmatch:\n===actual===\n%s\n===expected===\n%s", actual, expected)
	}
}

func TestToJSON(t *testing.T) {
	for name, testcase := range map[string]struct {
		when string
		then string
	}{
		"yaml mapping": {
			when: "name: artifacts\nkind: s3\ntags: [a, b]\nschema_:\n  bucket_connection:\n    bucket: s3://x\n",
			then: `{"kind":"s3","name":"artifacts","schema_":{"bucket_connection":{"bucket":"s3://x"}},"tags":["a","b"]}`,
		},
		"json document": {
			when: `{"value": [1, 2.5, "x", null]}`,
			then: `{"value":[1,2.5,"x",null]}`,
		},
		"nested sequence of mappings": {
			when: "- a: 1\n- b: {c: true}\n",
			then: `[{"a":1},{"b":{"c":true}}]`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			actual, err := yamler.ToJSON([]byte(testcase.when))
			if err != nil {
				t.Fatal(err)
			}
			if string(actual) != testcase.then {
				t.Errorf("unmatch: (actual, expected) = (%s, %s)", actual, testcase.then)
			}
		})
	}

	t.Run("it rejects non-string keys", func(t *testing.T) {
		if _, err := yamler.ToJSON([]byte("1: x\n")); err == nil {
			t.Error("no error")
		}
	})

	t.Run("Unmarshal reads along with json tags", func(t *testing.T) {
		var actual struct {
			MountPath string `json:"mount_path"`
		}
		if err := yamler.Unmarshal([]byte("mount_path: /data\n"), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.MountPath != "/data" {
			t.Errorf("unexpected: %+v", actual)
		}
	})
}
