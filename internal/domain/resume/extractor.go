package resume

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fields campos estructurados extraídos de un currículum en texto plano.
type Fields struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Location        string   `json:"location"`
	LinkedIn        string   `json:"linkedIn"`
	ExperienceYears string   `json:"experienceYears"`
	CurrentRole     string   `json:"currentRole"`
	CurrentCompany  string   `json:"currentCompany"`
	Skills          []string `json:"skills"`
}

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reEmail      = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	rePhone      = regexp.MustCompile(`(\+?\d{1,3}[\s-]?)?(\(?\d{3,5}\)?[\s-]?)?\d{3,4}[\s-]?\d{4}`)
	rePhoneJunk  = regexp.MustCompile(`[^\d+]`)
	reLinkedIn   = regexp.MustCompile(`(?i)https?://(www\.)?linkedin\.com/[^\s)]+`)
	reLocation   = regexp.MustCompile(`(?i)\b(?:` + strings.Join(Cities, "|") + `)\b`)
	reExperience = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:\+?\s*)?(?:years?|yrs?)`)
	reRole       = regexp.MustCompile(`(?i)\b(?:Software|Senior|Lead|Principal|Full\s*Stack|Frontend|Backend|Data|ML|AI|DevOps|QA|SDET|Product|Project|Android|iOS)[^,|;]{0,40}\b(?:Engineer|Developer|Manager|Architect|Scientist)\b`)
	reCompany    = regexp.MustCompile(`(?i)\b(?:at|@)\s*([A-Z][A-Za-z0-9&.\- ]{2,40})`)
	reSkipLine   = regexp.MustCompile(`(?i)^(resume|curriculum vitae|cv)$`)
	reTrailPunct = regexp.MustCompile(`[|,;]+$`)
	reNameSep    = regexp.MustCompile(`[._-]+`)
)

// skillPatterns un patrón por entrada del vocabulario: coincidencia de palabra
// completa, sin distinguir mayúsculas. Solo "." y "+" se escapan.
var skillPatterns = func() []*regexp.Regexp {
	escaper := strings.NewReplacer(".", `\.`, "+", `\+`)
	out := make([]*regexp.Regexp, len(Skills))
	for i, s := range Skills {
		out[i] = regexp.MustCompile(`(?i)\b` + escaper.Replace(s) + `\b`)
	}
	return out
}()

// rules pipeline ordenado de extractores independientes sobre el blob.
// Cada regla es pura: lee el blob y escribe a lo sumo un campo.
var rules = []struct {
	field string
	apply func(blob string, f *Fields)
}{
	{"email", func(blob string, f *Fields) {
		f.Email = reEmail.FindString(blob)
	}},
	{"phone", func(blob string, f *Fields) {
		f.Phone = normalizePhone(rePhone.FindString(blob))
	}},
	{"linkedIn", func(blob string, f *Fields) {
		f.LinkedIn = reLinkedIn.FindString(blob)
	}},
	{"location", func(blob string, f *Fields) {
		f.Location = reLocation.FindString(blob)
	}},
	{"experienceYears", func(blob string, f *Fields) {
		if m := reExperience.FindStringSubmatch(blob); m != nil {
			f.ExperienceYears = m[1]
		}
	}},
	{"currentRole", func(blob string, f *Fields) {
		f.CurrentRole = clean(reRole.FindString(blob))
	}},
	{"currentCompany", func(blob string, f *Fields) {
		if m := reCompany.FindStringSubmatch(blob); m != nil {
			f.CurrentCompany = clean(m[1])
		}
	}},
	{"skills", func(blob string, f *Fields) {
		f.Skills = matchSkills(blob)
	}},
}

// Parse extrae campos estructurados de texto crudo de un currículum.
// Función pura y determinista: entrada vacía o ilegible produce campos
// vacíos, nunca un error.
func Parse(rawText string) Fields {
	blob := reWhitespace.ReplaceAllString(rawText, " ")
	lines := splitLines(rawText)

	var f Fields
	f.Skills = []string{}
	for _, r := range rules {
		r.apply(blob, &f)
	}

	// El nombre depende de las líneas, no del blob; si ninguna línea
	// califica se deriva del local-part del email.
	f.Name = guessName(lines)
	if f.Name == "" && f.Email != "" {
		f.Name = nameFromEmail(f.Email)
	}

	f.Name = clean(f.Name)
	f.Email = clean(f.Email)
	f.Phone = clean(f.Phone)
	f.Location = clean(f.Location)
	f.LinkedIn = clean(f.LinkedIn)
	f.ExperienceYears = clean(f.ExperienceYears)
	f.CurrentRole = clean(f.CurrentRole)
	f.CurrentCompany = clean(f.CurrentCompany)
	return f
}

// ToRow proyecta los campos en la fila de 8 columnas que consume la vista de
// hoja de cálculo. El orden de columnas y el separador de skills son contrato
// externo estable.
func ToRow(f Fields) []string {
	return []string{
		f.Name,
		f.Email,
		f.Phone,
		f.CurrentRole,
		f.CurrentCompany,
		f.ExperienceYears,
		f.Location,
		strings.Join(f.Skills, ", "),
	}
}

// clean colapsa espacios en blanco y recorta extremos.
func clean(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

func splitLines(raw string) []string {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// normalizePhone elimina todo salvo dígitos y "+"; si el resultado supera 12
// caracteres conserva los últimos 12 (el ruido de prefijos sobra por delante).
func normalizePhone(match string) string {
	phone := rePhoneJunk.ReplaceAllString(clean(match), "")
	if len(phone) > 12 {
		phone = phone[len(phone)-12:]
	}
	return phone
}

func matchSkills(blob string) []string {
	skills := []string{}
	for i, re := range skillPatterns {
		if re.MatchString(blob) {
			skills = append(skills, Skills[i])
			if len(skills) == maxSkills {
				break
			}
		}
	}
	return skills
}

// guessName recorre solo las primeras 8 líneas no vacías: descarta cabeceras
// tipo "Resume"/"CV", líneas de más de 70 caracteres y líneas con dígitos;
// acepta la primera con al menos 4 letras, sin puntuación final.
func guessName(lines []string) string {
	limit := len(lines)
	if limit > 8 {
		limit = 8
	}
	for _, l := range lines[:limit] {
		t := clean(l)
		if t == "" {
			continue
		}
		if reSkipLine.MatchString(t) {
			continue
		}
		if utf8.RuneCountInString(t) > 70 {
			continue
		}
		if !containsDigit(t) && countLetters(t) >= 4 {
			return strings.TrimSpace(reTrailPunct.ReplaceAllString(t, ""))
		}
	}
	return ""
}

// nameFromEmail deriva un nombre del local-part: separadores ".", "_", "-"
// se vuelven espacios y cada palabra se capitaliza preservando el resto tal
// cual (dOE -> DOE, no Doe).
func nameFromEmail(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}
	words := strings.Fields(reNameSep.ReplaceAllString(local, " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			n++
		}
	}
	return n
}
