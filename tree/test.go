package tree

import (
	"github.com/pbanos/sapling/instance"
)

/*
Test takes a tree and an instance set and returns two values: the
fraction of instances whose class value the tree decides correctly,
and the number of instances the tree could not decide because of
ErrUnknownValue errors. An error is returned if deciding fails for any
other reason or the set is empty; if it is not nil the other values
will be 0.0 and 0 respectively.
*/
func Test(t Tree, examples *instance.Set) (float64, int, error) {
	if examples.Count() == 0 {
		return 0.0, 0, ErrNoExamples
	}
	attrs := examples.AttributeSet()
	classIndex := attrs.ClassIndex()
	var result float64
	var errCount int
	for _, in := range examples.Instances() {
		decision, err := t.Decide(attrs, in)
		if err != nil {
			if err != ErrUnknownValue {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		if decision == in.Value(classIndex) {
			result += 1.0
		}
	}
	result = result / float64(examples.Count())
	return result, errCount, nil
}
