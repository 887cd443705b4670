// Package lang holds one immutable Profile per supported language: the
// compiled boundary regex, rule groups, and abbreviation set a Processor
// needs to segment text in that language.
//
// Fidelity varies by how much of original_source/sentencesplit/lang/ was
// retrieved for a given code. English, Spanish, Chinese, Japanese, Arabic,
// and Persian carry their full retrieved rule sets (sentence starters,
// AM/PM handling, CJK quote pairs, colon/comma hooks). Hindi, Marathi,
// Urdu, Armenian, Burmese, and Greek retained only a punctuation set and
// boundary regex. Amharic, Bulgarian, Russian, Polish, Dutch, Danish,
// French, Italian, German, Kazakh, and Slovak had no retrievable source at
// all and fall back to the Common+Standard defaults with a small seeded
// abbreviation list — see default_latin.go and DESIGN.md.
package lang
