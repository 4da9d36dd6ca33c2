package instance

import (
	"math"

	"github.com/pbanos/sapling/attribute"
)

// Error represents an error observing values on a distribution
type Error string

/*
ErrNoObservations is the error returned by the Mode method of a
distribution when no value has been observed on it.
*/
const ErrNoObservations = Error("distribution has no observed values")

func (e Error) Error() string {
	return string(e)
}

/*
Distribution accumulates how often each legal value of an attribute is
observed over a set of instances and derives the value probabilities,
their Shannon entropy and the most frequent value. A Distribution is
created fresh for each computation and discarded afterwards, it is
never shared.
*/
type Distribution struct {
	attribute     *attribute.Attribute
	frequencies   map[string]int
	probabilities map[string]float64
	total         int
}

/*
NewDistribution takes an attribute and returns an empty Distribution
over its legal values.
*/
func NewDistribution(a *attribute.Attribute) *Distribution {
	return &Distribution{
		attribute:     a,
		frequencies:   make(map[string]int),
		probabilities: make(map[string]float64),
	}
}

/*
Increment adds one observation of the given value to the distribution
or returns an error if the value is not among the attribute's legal
values.
*/
func (d *Distribution) Increment(value string) error {
	ok, err := d.attribute.Valid(value)
	if !ok {
		return err
	}
	d.frequencies[value]++
	d.total++
	return nil
}

/*
ComputeProbabilities derives the probability of every legal value of
the attribute from the accumulated frequencies. It must be called
after the last Increment and before reading probabilities or entropy.
*/
func (d *Distribution) ComputeProbabilities() {
	for _, v := range d.attribute.Values() {
		if d.total == 0 {
			d.probabilities[v] = 0.0
			continue
		}
		d.probabilities[v] = float64(d.frequencies[v]) / float64(d.total)
	}
}

/*
TotalFrequency returns the total number of observed values.
*/
func (d *Distribution) TotalFrequency() int {
	return d.total
}

/*
Frequency returns the number of observations of the given value.
*/
func (d *Distribution) Frequency(value string) int {
	return d.frequencies[value]
}

/*
Probability returns the probability of the given value as computed by
the last call to ComputeProbabilities.
*/
func (d *Distribution) Probability(value string) float64 {
	return d.probabilities[value]
}

/*
Entropy returns the Shannon entropy of the distribution in bits:
-sum(p*log2(p)) over the values with probability greater than zero.
Values that were never observed contribute nothing. It requires
ComputeProbabilities to have been called.
*/
func (d *Distribution) Entropy() float64 {
	var result float64
	for _, v := range d.attribute.Values() {
		p := d.probabilities[v]
		if p > 0 {
			result -= p * math.Log2(p)
		}
	}
	return result
}

/*
Mode returns the legal value with the maximum frequency. Ties are
broken in favour of the value declared first on the attribute, so the
result is deterministic for a fixed input. It returns
ErrNoObservations when nothing has been observed.
*/
func (d *Distribution) Mode() (string, error) {
	if d.total == 0 {
		return "", ErrNoObservations
	}
	var mode string
	var max int
	for _, v := range d.attribute.Values() {
		if d.frequencies[v] > max {
			mode = v
			max = d.frequencies[v]
		}
	}
	return mode, nil
}
