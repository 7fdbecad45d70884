package retry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/polyaxon/plx/pkg/utils/retry"
)

func immediate(ctx context.Context) error { return ctx.Err() }

func TestDo(t *testing.T) {
	errFatal := errors.New("fatal")

	type when struct {
		attempts int
		results  []error
	}
	type then struct {
		calls  int
		finals []bool
		err    error
	}

	for name, testcase := range map[string]struct {
		when when
		then then
	}{
		"success at first is returned": {
			when: when{attempts: 3, results: []error{nil}},
			then: then{calls: 1, finals: []bool{false}},
		},
		"retriable errors are retried": {
			when: when{attempts: 3, results: []error{retry.ErrRetry, retry.ErrRetry, nil}},
			then: then{calls: 3, finals: []bool{false, false, true}},
		},
		"non-retriable error stops": {
			when: when{attempts: 3, results: []error{retry.ErrRetry, errFatal}},
			then: then{calls: 2, finals: []bool{false, false}, err: errFatal},
		},
		"final attempt is returned as is": {
			when: when{attempts: 2, results: []error{retry.ErrRetry, retry.ErrRetry}},
			then: then{calls: 2, finals: []bool{false, true}, err: retry.ErrRetry},
		},
		"no attempts calls once as final": {
			when: when{attempts: 0, results: []error{retry.ErrRetry}},
			then: then{calls: 1, finals: []bool{true}, err: retry.ErrRetry},
		},
	} {
		t.Run(name, func(t *testing.T) {
			finals := []bool{}
			got, err := retry.Do(context.Background(), immediate, testcase.when.attempts, func(final bool) (int, error) {
				finals = append(finals, final)
				n := len(finals)
				return n, testcase.when.results[n-1]
			})

			if got != testcase.then.calls {
				t.Errorf("calls: (actual, expected) = (%d, %d)", got, testcase.then.calls)
			}
			if fmt.Sprint(finals) != fmt.Sprint(testcase.then.finals) {
				t.Errorf("finals: (actual, expected) = (%v, %v)", finals, testcase.then.finals)
			}
			if testcase.then.err == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, testcase.then.err) {
				t.Errorf("error: (actual, expected) = (%v, %v)", err, testcase.then.err)
			}
		})
	}

	t.Run("canceled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0
		_, err := retry.Do(ctx, retry.Exponential(time.Hour, 2, 0), 5, func(bool) (int, error) {
			calls += 1
			return 0, retry.ErrRetry
		})
		if !errors.Is(err, context.Canceled) || calls != 1 {
			t.Errorf("(err, calls) = (%v, %d)", err, calls)
		}
	})
}

func TestExponential(t *testing.T) {
	b := retry.Exponential(time.Millisecond, 4, 8*time.Millisecond)
	for nth, min := range []time.Duration{
		time.Millisecond, 4 * time.Millisecond, 8 * time.Millisecond, 8 * time.Millisecond,
	} {
		before := time.Now()
		if err := b(context.Background()); err != nil {
			t.Fatal(err)
		}
		if elapsed := time.Since(before); elapsed < min {
			t.Errorf("#%d waited %s, shorter than %s", nth, elapsed, min)
		}
	}
}
