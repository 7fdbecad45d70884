package template

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/polyaxon/plx/cmd/plx/subcommands/common"
	"github.com/polyaxon/plx/pkg/api/types/matrix"
	"github.com/polyaxon/plx/pkg/utils/yamler"
	"github.com/youta-t/flarc"
	"gopkg.in/yaml.v3"
)

type Flags struct {
	Kind []string `flag:"kind" alias:"k" metavar:"KIND" help:"include only the kind of hyperparameter. Repeatable."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Print a template of hyperparameters file.",
		Flags{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Print a template of hyperparameters file, with an example of each kind.

The output can be passed to "plx matrix grid" or "plx matrix random" after editing.

Example
-------

	{{ .Command }} --kind choice --kind uniform > params.yaml
`),
	)
}

func numbers(pairs ...any) *yaml.Node {
	entries := []yamler.MapEntry{}
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, yamler.Entry(
			yamler.Text(pairs[i].(string)),
			yamler.Number(pairs[i+1].(float64)),
		))
	}
	return yamler.WithStyle(yaml.FlowStyle)(yamler.Map(entries...))
}

type example struct {
	name    string
	comment string
	value   *yaml.Node
}

var examples = map[string]example{
	matrix.KindChoice: {
		"optimizer", "one of values.",
		yamler.FlowSeq(yamler.Text("adam"), yamler.Text("sgd")),
	},
	matrix.KindPChoice: {
		"activation", "one of values, with probabilities summing up to 1.",
		yamler.FlowSeq(
			yamler.FlowSeq(yamler.Text("relu"), yamler.Number(0.7)),
			yamler.FlowSeq(yamler.Text("tanh"), yamler.Number(0.3)),
		),
	},
	matrix.KindRange: {
		"epochs", "start, start+step, ... before stop.",
		numbers("start", 10.0, "stop", 50.0, "step", 10.0),
	},
	matrix.KindLinSpace: {
		"dropout", "num points from start to stop, evenly spaced.",
		numbers("start", 0.1, "stop", 0.5, "num", 5.0),
	},
	matrix.KindLogSpace: {
		"lr", "num points from base^start to base^stop. base is 10 when omitted.",
		numbers("start", -4.0, "stop", -1.0, "num", 4.0),
	},
	matrix.KindGeomSpace: {
		"hidden", "num points from start to stop, evenly spaced on log scale.",
		numbers("start", 16.0, "stop", 256.0, "num", 5.0),
	},
	matrix.KindUniform: {
		"momentum", "a value drawn uniformly from [low, high).",
		numbers("low", 0.8, "high", 0.99),
	},
	matrix.KindQUniform: {
		"batch", "uniform, rounded to multiple of q.",
		numbers("low", 16.0, "high", 128.0, "q", 16.0),
	},
	matrix.KindLogUniform: {
		"weight_decay", "exp of a value drawn uniformly from [low, high).",
		numbers("low", -9.0, "high", -3.0),
	},
	matrix.KindQLogUniform: {
		"warmup", "loguniform, rounded to multiple of q.",
		numbers("low", 0.0, "high", 5.0, "q", 10.0),
	},
	matrix.KindNormal: {
		"init_scale", "a value drawn from normal distribution.",
		numbers("loc", 0.0, "scale", 1.0),
	},
	matrix.KindQNormal: {
		"layers", "normal, rounded to multiple of q.",
		numbers("loc", 4.0, "scale", 1.0, "q", 1.0),
	},
	matrix.KindLogNormal: {
		"noise", "exp of a value drawn from normal distribution.",
		numbers("loc", 0.0, "scale", 0.5),
	},
	matrix.KindQLogNormal: {
		"heads", "lognormal, rounded to multiple of q.",
		numbers("loc", 1.5, "scale", 0.5, "q", 2.0),
	},
}

// Template builds a yaml document having an example of each kind, in order of kinds.
func Template(kinds []string) (*yaml.Node, error) {
	known := matrix.Kinds()
	entries := []yamler.MapEntry{}
	for _, k := range known {
		if len(kinds) != 0 && !slices.Contains(kinds, k) {
			continue
		}
		ex := examples[k]
		entries = append(entries, yamler.Entry(
			yamler.Text(ex.name, yamler.WithHeadComment(fmt.Sprintf("%s: %s", k, ex.comment))),
			yamler.Map(
				yamler.Entry(yamler.Text("kind"), yamler.Text(k)),
				yamler.Entry(yamler.Text("value"), ex.value),
			),
		))
	}
	for _, k := range kinds {
		if !slices.Contains(known, k) {
			return nil, errors.Join(flarc.ErrUsage, fmt.Errorf("unknown kind %q, expected one of %v", k, known))
		}
	}
	return yamler.Map(entries...), nil
}

func Task() common.PlxTaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		node, err := Template(cl.Flags().Kind)
		if err != nil {
			return err
		}
		b, err := yamler.Encode(node)
		if err != nil {
			return err
		}
		_, err = cl.Stdout().Write(b)
		return err
	}
}
