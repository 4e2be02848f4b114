// Package mockgen produces fake data, either from dotted generator paths
// (the workbench's mock-data vocabulary) or by mirroring the shape of a
// sample value tree.
package mockgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// Generator produces mock values. A zero seed gives non-deterministic
// output; any other seed is reproducible.
type Generator struct {
	faker *gofakeit.Faker
}

// New creates a Generator with the given seed.
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// pathFuncs maps dotted mock paths to their generators. Kept sorted in
// Paths() for stable listings.
func (g *Generator) pathFuncs() map[string]func() any {
	f := g.faker
	return map[string]func() any{
		"address.city":       func() any { return f.City() },
		"address.country":    func() any { return f.Country() },
		"address.street":     func() any { return f.Street() },
		"address.zip":        func() any { return f.Zip() },
		"color.name":         func() any { return f.Color() },
		"company.name":       func() any { return f.Company() },
		"company.buzzword":   func() any { return f.BuzzWord() },
		"date.recent":        func() any { return f.PastDate().Format("2006-01-02T15:04:05Z07:00") },
		"finance.amount":     func() any { return f.Price(1, 10000) },
		"finance.currency":   func() any { return f.CurrencyShort() },
		"internet.domain":    func() any { return f.DomainName() },
		"internet.email":     func() any { return f.Email() },
		"internet.ip":        func() any { return f.IPv4Address() },
		"internet.url":       func() any { return f.URL() },
		"internet.useragent": func() any { return f.UserAgent() },
		"lorem.paragraph":    func() any { return f.Paragraph(1, 3, 8, " ") },
		"lorem.sentence":     func() any { return f.Sentence(8) },
		"lorem.word":         func() any { return f.Word() },
		"number.float":       func() any { return f.Float64Range(0, 1000) },
		"number.int":         func() any { return float64(f.Number(0, 1000)) },
		"person.first":       func() any { return f.FirstName() },
		"person.first_name":  func() any { return f.FirstName() },
		"person.last":        func() any { return f.LastName() },
		"person.last_name":   func() any { return f.LastName() },
		"person.name":        func() any { return f.Name() },
		"phone.number":       func() any { return f.Phone() },
		"string.uuid":        func() any { return f.UUID() },
	}
}

// Paths lists every supported dotted path.
func (g *Generator) Paths() []string {
	funcs := g.pathFuncs()
	paths := make([]string, 0, len(funcs))
	for p := range funcs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// FromPaths generates one value per dotted path. Unknown paths are
// reported in the returned error list instead of aborting the batch.
func (g *Generator) FromPaths(paths []string) (map[string]any, []string) {
	funcs := g.pathFuncs()
	out := make(map[string]any, len(paths))
	errs := []string{}
	for _, p := range paths {
		fn, ok := funcs[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown mock path %q", p))
			continue
		}
		out[p] = fn()
	}
	return out, errs
}

// FromSample produces count records shaped like the sample: objects and
// arrays keep their structure, scalar leaves are regenerated with values
// picked by field-name heuristics (a key containing "email" gets an email
// address, and so on).
func (g *Generator) FromSample(sample *value.Value, count int) []any {
	if count <= 0 {
		count = 1
	}
	records := make([]any, count)
	for i := range records {
		records[i] = g.mockValue("", sample)
	}
	return records
}

func (g *Generator) mockValue(key string, v *value.Value) any {
	switch v.Kind {
	case value.KindNull:
		return nil
	case value.KindBool:
		return g.faker.Bool()
	case value.KindNumber:
		if v.IsInt() {
			return float64(g.faker.Number(0, 1000))
		}
		return g.faker.Float64Range(0, 1000)
	case value.KindString:
		return g.mockString(key)
	case value.KindArray:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = g.mockValue(key, item)
		}
		return items
	case value.KindObject:
		out := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			out[f.Key] = g.mockValue(f.Key, f.Val)
		}
		return out
	default:
		return nil
	}
}

func (g *Generator) mockString(key string) string {
	k := strings.ToLower(key)
	switch {
	case strings.Contains(k, "email"):
		return g.faker.Email()
	case strings.Contains(k, "url") || strings.Contains(k, "link"):
		return g.faker.URL()
	case strings.Contains(k, "uuid") || k == "id" || strings.HasSuffix(k, "_id") || strings.HasSuffix(k, "id"):
		return g.faker.UUID()
	case strings.Contains(k, "name"):
		return g.faker.Name()
	case strings.Contains(k, "phone"):
		return g.faker.Phone()
	case strings.Contains(k, "city"):
		return g.faker.City()
	case strings.Contains(k, "country"):
		return g.faker.Country()
	case strings.Contains(k, "date") || strings.Contains(k, "time"):
		return g.faker.PastDate().Format("2006-01-02T15:04:05Z07:00")
	case strings.Contains(k, "color"):
		return g.faker.Color()
	case strings.Contains(k, "company"):
		return g.faker.Company()
	default:
		return g.faker.Word()
	}
}
