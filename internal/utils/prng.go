// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandomSource — источник случайных чисел, который получают спавнер и эффекты.
// Позволяет подменить генератор в тестах.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает сид, с которым был создан генератор.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform возвращает равномерно распределённое число в [min, max).
func Uniform(src RandomSource, min, max float64) float64 {
	return min + (max-min)*src.Float64()
}

// IntRange возвращает целое в [min, max] включительно.
func IntRange(src RandomSource, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}

// ChooseCumulative выбирает индекс по кумулятивным порогам.
// thresholds должны возрастать; если r не попал ни в один порог,
// возвращается последний индекс + 1 (то есть len(thresholds)).
func ChooseCumulative(r float64, thresholds []float64) int {
	for i, t := range thresholds {
		if r < t {
			return i
		}
	}
	return len(thresholds)
}
