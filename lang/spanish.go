package lang

// Spanish, grounded on original_source/pysbd/lang/spanish.py: richer than
// the bare Common+Standard default in two ways that resolve spec.md §9's
// Open Question (a) in favor of keeping Spanish's own definition rather
// than collapsing it into a generic profile — it carries a real
// sentence-starter list, an extended academic-degree abbreviation set, and
// a spaced "a. m." / "p. m." AM/PM variant the English profile doesn't
// need to handle.
func newSpanish() *Profile {
	p := newLatinProfile("es")
	p.SentenceStarters = []string{
		"A", "Al", "Como", "Con", "De", "El", "Ella", "En", "Es", "Esta", "Esto",
		"Fue", "La", "Las", "Lo", "Los", "No", "Para", "Por", "Se", "Su", "Trabaja",
		"Un", "Una", "Y", "Yo",
	}
	p.AmPmRules = BuildSpanishAmPmRules()
	p.Abbreviation = Abbreviation{
		All: []string{
			"a.c", "a/c", "abr", "adj", "admón", "afmo", "ago", "almte", "ap", "apdo",
			"arq", "art", "atte", "av", "avda", "bco", "bibl", "bs. as", "c", "c.f",
			"c.g", "c/c", "c/u", "cap", "cc.aa", "cdad", "cm", "co", "cra", "cta",
			"cv", "d.e.p", "da", "dcha", "dcho", "dep", "dic", "dicc", "dir", "dn",
			"doc", "dom", "dpto", "dr", "dra", "dto", "ee", "ej", "en", "entlo",
			"esq", "etc", "excmo", "ext", "f.c", "fca", "fdo", "febr", "ff. aa",
			"ff.cc", "fig", "fil", "fra", "g.p", "g/p", "gob", "gr", "gral", "grs",
			"hnos", "hs", "igl", "iltre", "imp", "impr", "impto", "incl", "ing",
			"inst", "izdo", "izq", "izqdo", "j.c", "jue", "jul", "jun", "kg", "km",
			"lcdo", "ldo", "let", "lic", "ltd", "lun", "mar", "may", "mg", "min",
			"mié", "mm", "máx", "mín", "mt", "n. del t", "n.b", "no", "nov",
			"ntra. sra", "núm", "oct", "p", "p.a", "p.d", "p.ej", "p.v.p", "párrf",
			"ph.d", "ppal", "prev", "prof", "prov", "ptas", "pts", "pza", "pág",
			"págs", "párr", "q.e.g.e", "q.e.p.d", "q.e.s.m", "reg", "rep", "rr. hh",
			"rte", "s", "s. a", "s.a.r", "s.e", "s.l", "s.r.c", "s.r.l", "s.s.s",
			"s/n", "sdad", "seg", "sept", "sig", "sr", "sra", "sres", "srta", "sta",
			"sto", "sáb", "t.v.e", "tamb", "tel", "tfno", "ud", "uu", "uds", "univ",
			"v.b", "v.e", "vd", "vds", "vid", "vie", "vol", "vs", "vto",
			"ph.d", "m.d", "b.a", "b.s", "m.a", "m.b.a",
		},
		Prepositive: []string{"dr", "ee", "lic", "mt", "prof", "sra", "srta"},
		NumberAbbr:  []string{"cra", "ext", "no", "nos", "p", "pp", "tel"},
	}
	return p
}
