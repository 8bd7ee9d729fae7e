package delta

import (
	"fmt"
	"math/rand"
	"testing"
)

// benchInputs builds a reference and a target that shares most of its
// content, the typical shape of consecutive blob revisions.
func benchInputs(size int) (ref, target []byte) {
	rnd := rand.New(rand.NewSource(99))
	ref = make([]byte, size)
	rnd.Read(ref)

	target = append([]byte{}, ref...)
	for i := 0; i < size/1000+1; i++ {
		at := rnd.Intn(len(target))
		target[at] ^= 0xff
	}

	return ref, target
}

func BenchmarkDiff(b *testing.B) {
	for _, size := range []int{4096, 65536, 1 << 20} {
		ref, target := benchInputs(size)

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				if _, err := Diff(ref, target, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	for _, size := range []int{4096, 65536, 1 << 20} {
		ref, target := benchInputs(size)
		d, err := Diff(ref, target, 0)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				if _, err := Apply(ref, d); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBuildIndex(b *testing.B) {
	for _, size := range []int{4096, 65536, 1 << 20} {
		ref, _ := benchInputs(size)

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				x := newBlockIndex(ref)
				x.release()
			}
		})
	}
}
