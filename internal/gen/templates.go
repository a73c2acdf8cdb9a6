package gen

import (
	"bytes"
	"fmt"
	"text/template"
)

// templateData is a ClassRecord plus the strategy switch for the template.
type templateData struct {
	ClassRecord
	StaticInit bool
}

// Render produces the Java source text for one class record using the
// configured emission strategy.
func (g *Generator) Render(rec ClassRecord) ([]byte, error) {
	data := templateData{
		ClassRecord: rec,
		StaticInit:  g.config.Strategy == StrategyStaticInit,
	}

	var buf bytes.Buffer
	if err := javaClassTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing class template for %s: %w", rec.OriginalName, err)
	}

	return buf.Bytes(), nil
}

// javaClassTemplate renders one generated mapping class. The plain strategy
// assigns constants inline; static-init declares them first and assigns them
// in a static block.
var javaClassTemplate = template.Must(template.New("javaClass").Parse(`{{if .PackageName}}package {{.PackageName}};

{{end}}/**
 * Mappings for the {@code {{.OriginalName}}} class.
 * This file is automatically generated. Do not edit.
 */
public final class {{.SimpleName}} {
    private {{.SimpleName}}() {}

    public static final String ORIGINAL_NAME = "{{.OriginalName}}";
{{if .ObfuscatedName}}    public static final String OBFUSCATED_NAME = "{{.ObfuscatedName}}";
{{end}}{{if .Fields}}
    public static final class Fields {
        private Fields() {}

{{if .StaticInit}}{{range .Fields}}        public static final String {{.Name}};
{{end}}
        static {
{{range .Fields}}            {{.Name}} = "{{.Value}}";
{{end}}        }
{{else}}{{range .Fields}}        public static final String {{.Name}} = "{{.Value}}";
{{end}}{{end}}    }
{{end}}{{if .Methods}}
    public static final class Methods {
        private Methods() {}

{{if .StaticInit}}{{range .Methods}}        public static final String {{.Name}};
{{end}}
        static {
{{range .Methods}}            {{.Name}} = "{{.Value}}";
{{end}}        }
{{else}}{{range .Methods}}        public static final String {{.Name}} = "{{.Value}}";
{{end}}{{end}}    }
{{end}}}
`))
