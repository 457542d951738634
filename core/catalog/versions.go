package catalog

// DefaultVersion is the version used when none is configured.
const DefaultVersion = "NIV"

// Version describes one supported version of the Bible.
type Version struct {
	Abbreviation string
	Name         string
	Language     Language
	// Deuterocanon reports whether the version includes the deuterocanonical books.
	Deuterocanon bool
}

var languageOrder = []Language{
	English, Spanish, Chinese, Korean, Japanese, Portuguese, French, German, Italian, Hindi,
}

var versions = []Version{
	{"CEB", "Common English Bible", English, true},
	{"ESV", "English Standard Version", English, false},
	{"KJV", "King James Version", English, false},
	{"LEB", "Lexham English Bible", English, false},
	{"MSG", "The Message", English, false},
	{"NIV", "New International Version", English, false},
	{"NKJV", "New King James Version", English, false},
	{"NLT", "New Living Translation", English, false},

	{"NTV", "Nueva Traducción Viviente", Spanish, false},
	{"NVI", "Nueva Versión Internacional", Spanish, false},
	{"RVC", "Reina Valera Contemporánea", Spanish, false},
	{"RVR1960", "Reina-Valera 1960", Spanish, false},
	{"RVA", "Reina-Valera Antigua", Spanish, false},

	{"CCB", "Chinese Contemporary Bible (Simplified)", Chinese, false},
	{"CCBT", "Chinese Contemporary Bible (Traditional)", Chinese, false},
	{"CNVS", "Chinese New Version (Simplified)", Chinese, false},
	{"CNVT", "Chinese New Version (Traditional)", Chinese, false},
	{"CUVS", "Chinese Union Version (Simplified)", Chinese, false},
	{"CUV", "Chinese Union Version (Traditional)", Chinese, false},
	{"CUVMPS", "Chinese Union Version Modern Punctuation (Simplified)", Chinese, false},
	{"CUVMPT", "Chinese Union Version Modern Punctuation (Traditional)", Chinese, false},

	{"KLB", "Korean Living Bible", Korean, false},

	{"JLB", "Japanese Living Bible", Japanese, false},

	{"ARC", "Almeida Revista e Corrigida 2009", Portuguese, false},
	{"NVT", "Nova Versão Transformadora", Portuguese, false},
	{"NVI-PT", "Nova Versão Internacional", Portuguese, false},

	{"LSG", "Louis Segond", French, false},
	{"NEG1979", "Nouvelle Edition de Genève – NEG1979", French, false},

	{"HOF", "Hoffnung für Alle", German, false},
	{"LUTH1545", "Luther Bibel 1545", German, false},

	{"CEI", "Conferenza Episcopale Italiana", Italian, true},
	{"NR2006", "Nuova Riveduta 2006", Italian, false},

	{"ERV-HI", "Hindi Bible: Easy-to-Read Version", Hindi, false},
}

var versionsByAbbreviation = func() map[string]Version {
	m := make(map[string]Version, len(versions))
	for _, v := range versions {
		m[foldKey(v.Abbreviation)] = v
	}
	return m
}()

// FindVersion looks up a supported version by abbreviation, ignoring case.
func FindVersion(abbreviation string) (Version, bool) {
	v, ok := versionsByAbbreviation[foldKey(abbreviation)]
	return v, ok
}

// Versions returns every supported version grouped by language.
func Versions() []Version {
	return append([]Version(nil), versions...)
}

// VersionsFor returns the supported versions of one language.
func VersionsFor(lang Language) []Version {
	var out []Version
	for _, v := range versions {
		if v.Language == lang {
			out = append(out, v)
		}
	}
	return out
}

// Languages returns the supported languages in catalog order.
func Languages() []Language {
	return append([]Language(nil), languageOrder...)
}
