package web

import (
	"fmt"
	"html/template"
	"time"
)

// templateFuncs are the helpers available in every template.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"iterate": func(count int) []int {
			result := make([]int, count)
			for i := range result {
				result[i] = i
			}

			return result
		},
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"text": func(s *string) string {
			if s == nil {
				return ""
			}

			return *s
		},
		"year": func(v *int) string {
			if v == nil {
				return ""
			}

			return fmt.Sprint(*v)
		},
		"price": func(p *float64) string {
			if p == nil || *p == 0 {
				return "Consultar"
			}

			return fmt.Sprintf("$%.2f", *p)
		},
		"currentYear": func() int {
			return time.Now().Year()
		},
	}
}
