package trace

import "github.com/cespare/xxhash/v2"

const sampleBuckets = 10000

// Sampler selects event types deterministically: a given type is either
// always or never traced for a given rate.
type Sampler struct {
	threshold uint64
}

func NewSampler(rate float64) Sampler {
	switch {
	case rate <= 0:
		return Sampler{threshold: 0}
	case rate >= 1:
		return Sampler{threshold: sampleBuckets}
	default:
		return Sampler{threshold: uint64(rate * sampleBuckets)}
	}
}

func (s Sampler) Sample(eventType string) bool {
	if s.threshold >= sampleBuckets {
		return true
	}
	return xxhash.Sum64String(eventType)%sampleBuckets < s.threshold
}
