package ascramp

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"
)

const glslTemplate = `const vec3 {{.Ident}}_COLORS[{{len .Rows}}] = vec3[](
{{- range .Rows}}
    {{.}}
{{- end}}
);
`

var glslTmpl = template.Must(template.New("glsl").Parse(glslTemplate))

// GLSLIdent turns a ramp name into an upper-case GLSL identifier prefix:
// "gist_earth" becomes "GIST_EARTH", "Blue-to-Red" becomes "BLUE_TO_RED".
func GLSLIdent(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if i == 0 && unicode.IsDigit(r) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "RAMP"
	}
	return b.String()
}

// WriteGLSL writes t as a fixed-size GLSL vec3 array literal named
// <IDENT>_COLORS, each component printed to six decimal places.
func WriteGLSL(w io.Writer, name string, t ColorTable) error {
	rows := make([]string, len(t))
	for i, c := range t {
		sep := ","
		if i == len(t)-1 {
			sep = ""
		}
		rows[i] = fmt.Sprintf("vec3(%.6f, %.6f, %.6f)%s", c.R, c.G, c.B, sep)
	}
	return glslTmpl.Execute(w, struct {
		Ident string
		Rows  []string
	}{GLSLIdent(name), rows})
}

// WriteJSON writes t as a JSON array of [r, g, b] triples rounded to six
// decimals.
func WriteJSON(w io.Writer, t ColorTable) error {
	rows := make([][3]float64, len(t))
	for i, c := range t.Rounded() {
		rows[i] = [3]float64{c.R, c.G, c.B}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(rows)
}
