package services

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// Document endpoints linked from company notes. Download links carry no
// API token; append api_token=<token> to use them.
const (
	frDocumentURL = "https://api.pappers.fr/v2/document/"
	frDownloadURL = "https://www.pappers.fr/document/telecharger"
	inDownloadURL = "https://api.pappers.in/v1/download-file"
)

var frDocuments = []struct {
	label string
	kind  string
}{
	{"Extraits Pappers", "extrait_pappers"},
	{"Extraits INPI", "extrait_inpi"},
	{"Avis situation INSEE", "avis_situation_insee"},
	{"Beneficiaires effectifs", "declaration_beneficiaires_effectifs"},
	{"Dernier status", "statuts"},
	{"Rapport Solvabilité", "rapport_solvabilite"},
}

var emphasis = regexp.MustCompile(`(?is)</?em>`)

type noteBuilder struct {
	strings.Builder
}

func (b *noteBuilder) line(indent, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s%s : %s\n", indent, label, value)
}

// frCompanyNote lists the documents available for a French company:
// official extracts, filed deeds, filed accounts and BODACC publications.
func frCompanyNote(id string, rec domain.RawRecord) string {
	var b noteBuilder

	for _, d := range frDocuments {
		b.line("", d.label, frDocumentURL+d.kind+"?siren="+url.QueryEscape(id))
	}
	b.WriteString("\n")

	if deeds, _ := rec.Objects("depots_actes"); len(deeds) > 0 {
		b.WriteString("Dépots actes :\n")
		for _, d := range deeds {
			if name := d.Text("nom_fichier_pdf"); name != "" {
				b.line("  ", "Name", name)
				b.line("  ", "URL", downloadURL(frDownloadURL, d.Text("token")))
			}
			b.line("  ", "Date de dépot", d.Text("date_depot_formate"))
			if decisions, _ := d.Objects("actes"); len(decisions) > 0 {
				for _, decision := range decisions {
					b.line("  ", decision.Text("type"), decision.Text("decision"))
				}
			}
			b.WriteString("\n")
		}
	}

	if accounts, _ := rec.Objects("comptes"); len(accounts) > 0 {
		b.WriteString("Dépots comptes :\n")
		for _, a := range accounts {
			if name := a.Text("nom_fichier_pdf"); name != "" {
				b.line("   ", "Name", name)
				b.line("   ", "URL", downloadURL(frDownloadURL, a.Text("token")))
			}
			if name := a.Text("nom_fichier_xlsx"); name != "" {
				b.line("   ", "Excel", name)
				b.line("   ", "URL", downloadURL(frDownloadURL, a.Text("token_xlsx")))
			}
			b.line("   ", "Date de dépot", a.Text("date_depot_formate"))
			b.WriteString("\n")
		}
	}

	if publications, _ := rec.Objects("publications_bodacc"); len(publications) > 0 {
		b.WriteString("Publication bodacc :\n")
		for _, p := range publications {
			b.line("   ", "Numero", p.Text("numero_parution"))
			b.line("   ", "Date", p.Text("date"))
			b.line("   ", "Type", p.Text("type"))
			b.line("   ", "Denomination", p.Text("denomination"))
			b.line("   ", "Descriptif", p.Text("descriptif"))
			b.line("   ", "Adresse", p.Text("adresse"))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// inCompanyNote lists the documents, financial statements and
// publications available for an international company.
func inCompanyNote(rec domain.RawRecord) string {
	var b noteBuilder

	document := func(d domain.RawRecord, date string) {
		b.line("  ", "Document type", d.Text("type"))
		b.line("  ", "Description", d.Text("description"))
		b.line("  ", "Date", date)
		if d.Bool("file_available") {
			b.line("  ", "URL", downloadURL(inDownloadURL, d.Text("file_token")))
		}
		b.WriteString("\n")
	}

	if docs, _ := rec.Objects("documents"); len(docs) > 0 {
		b.WriteString("Documents :\n")
		for _, d := range docs {
			document(d, d.Text("date"))
		}
	}

	if financials, _ := rec.Objects("financials"); len(financials) > 0 {
		b.WriteString("Financials :\n")
		for _, f := range financials {
			related, _ := f.Objects("related_documents")
			for _, d := range related {
				date := d.Text("date")
				if date == "" {
					date = f.Text("date")
				}
				document(d, date)
			}
		}
	}

	if publications, _ := rec.Objects("publications"); len(publications) > 0 {
		b.WriteString("Publications :\n")
		for _, p := range publications {
			document(p, p.Text("date"))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// mentionNote lists the documents mentioning a searched address. The
// excerpts lose their <em> highlighting and any non-ASCII character, and
// the result is HTML-escaped.
func mentionNote(documents []domain.RawRecord, dateKey string) string {
	if len(documents) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Mentionned in :\n\n")
	for _, d := range documents {
		if kind := d.Text("type"); kind != "" {
			fmt.Fprintf(&b, "Type: %s\n", kind)
		}
		if date := d.Text(dateKey); date != "" {
			fmt.Fprintf(&b, "Date: %s\n", date)
		}
		for _, m := range d.Strings("mentions") {
			fmt.Fprintf(&b, "  %s\n", asciiOnly(m))
		}
	}
	return html.EscapeString(emphasis.ReplaceAllString(b.String(), ""))
}

func downloadURL(base, token string) string {
	if token == "" {
		return ""
	}
	return base + "?token=" + url.QueryEscape(token)
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 127 {
			return -1
		}
		return r
	}, s)
}
