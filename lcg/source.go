package lcg

import "math/rand"

// 验证接口实现
var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a parameterized LCG to math/rand. Every output is a residue
// of the modulus, so the source is only as wide as the modulus allows.
type Source struct {
	g *Generator
}

// NewSource returns a rand.Source64 that walks the recurrence of p.
func NewSource(p Params) *Source {
	return &Source{g: NewGenerator(p)}
}

// Seed 实现rand.Source接口，种子约减到 [0, modulus)
func (s *Source) Seed(seed int64) {
	m := int64(s.g.m)
	seed %= m
	if seed < 0 {
		seed += m
	}
	s.g.seed = uint64(seed)
	s.g.Reset()
}

// Uint64 实现rand.Source64接口
func (s *Source) Uint64() uint64 {
	return uint64(s.g.Next())
}

// Int63 生成63位随机数
func (s *Source) Int63() int64 {
	return s.g.Next()
}
