package kuuid

import (
	"testing"

	"github.com/martinlehoux/kuuid/kb64"
)

func BenchmarkString(b *testing.B) {
	id := New()
	for i := 0; i < b.N; i++ {
		_ = id.String()
	}
}

func BenchmarkStringNewIDPerLoop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New().String()
	}
}

func BenchmarkAppendText(b *testing.B) {
	id := New()
	var buf [kb64.EncodedLen]byte
	for i := 0; i < b.N; i++ {
		_, _ = id.AppendText(buf[:0])
	}
}

func BenchmarkAppendTextNewIDPerLoop(b *testing.B) {
	var buf [kb64.EncodedLen]byte
	for i := 0; i < b.N; i++ {
		_, _ = New().AppendText(buf[:0])
	}
}

func BenchmarkAppendTextReusedHeapBuffer(b *testing.B) {
	id := New()
	buf := make([]byte, 0, kb64.EncodedLen)
	for i := 0; i < b.N; i++ {
		_, _ = id.AppendText(buf)
	}
}
