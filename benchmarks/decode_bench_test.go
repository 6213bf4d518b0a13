package benchmarks

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/reoring/jarkup"
	"github.com/reoring/jarkup/source/stdjson"
)

// ---- Helpers ----

// generateDocument returns a document of numSections sections, each a
// Heading, a Paragraph and a List of itemsPerList items.
func generateDocument(numSections, itemsPerList int) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < numSections; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"type":"Heading","inline":false,"id":"h%d","props":{"level":2},"slots":{"default":[{"type":"Text","inline":true,"props":{"text":"Section %d","bold":true}}]}},`, i, i)
		fmt.Fprintf(&buf, `{"type":"Paragraph","inline":false,"slots":{"default":[{"type":"Text","inline":true,"props":{"text":"Body %d"}},{"type":"Icon","inline":true,"props":{"src":"i.png"}}]}},`, i)
		buf.WriteString(`{"type":"List","inline":false,"props":{"listStyle":"ordered"},"slots":{"default":[`)
		for k := 0; k < itemsPerList; k++ {
			if k > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, `{"type":"ListItem","inline":false,"slots":{"default":[{"type":"Text","inline":true,"props":{"text":"item %d"}}]}}`, k)
		}
		buf.WriteString(`]}}`)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

const (
	smallSections = 4
	hugeSections  = 2000
	itemsPerList  = 8
)

func benchUnmarshal(b *testing.B, data []byte, opt jarkup.DecodeOpt) {
	ctx := context.Background()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jarkup.UnmarshalDocument(ctx, data, opt); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Micro benchmarks (small inputs) ----

func Benchmark_UnmarshalDocument_Small(b *testing.B) {
	benchUnmarshal(b, generateDocument(smallSections, itemsPerList), jarkup.DecodeOpt{})
}

func Benchmark_DecodeDocumentFrom_Small_JSONReader(b *testing.B) {
	ctx := context.Background()
	data := generateDocument(smallSections, itemsPerList)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jarkup.DecodeDocumentFrom(ctx, jarkup.JSONReader(bytes.NewReader(data))); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_MarshalDocument_Small(b *testing.B) {
	doc, err := jarkup.UnmarshalDocument(context.Background(), generateDocument(smallSections, itemsPerList))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jarkup.MarshalDocument(doc); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Macro benchmarks (huge documents) ----

func Benchmark_UnmarshalDocument_Huge(b *testing.B) {
	benchUnmarshal(b, generateDocument(hugeSections, itemsPerList), jarkup.DecodeOpt{})
}

func Benchmark_UnmarshalDocument_Huge_NoDuplicateCheck(b *testing.B) {
	benchUnmarshal(b, generateDocument(hugeSections, itemsPerList), jarkup.DecodeOpt{Strictness: jarkup.Strictness{OnDuplicateKey: jarkup.Ignore}})
}

func Benchmark_UnmarshalDocument_Huge_Parallel(b *testing.B) {
	benchUnmarshal(b, generateDocument(hugeSections, itemsPerList), jarkup.DecodeOpt{Parallelism: 8})
}

func Benchmark_UnmarshalDocument_Huge_StdJSONDriver(b *testing.B) {
	jarkup.SetJSONDriver(stdjson.Driver{})
	defer jarkup.UseDefaultJSONDriver()
	benchUnmarshal(b, generateDocument(hugeSections, itemsPerList), jarkup.DecodeOpt{})
}

func TestGenerateDocument_Decodes(t *testing.T) {
	doc, err := jarkup.UnmarshalDocument(context.Background(), generateDocument(3, 2))
	if err != nil {
		t.Fatalf("generated document must decode: %v", err)
	}
	if len(doc) != 9 {
		t.Fatalf("expected 9 roots, got %d", len(doc))
	}
}
