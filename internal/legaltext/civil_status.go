package legaltext

import (
	"strings"

	"github.com/mamadbah2/agence/internal/domain/models"
)

// gendered picks the masculine or feminine form for a party.
func gendered(p models.Party, masculine, feminine string) string {
	if p.IsFemale() {
		return feminine
	}
	return masculine
}

// civility renders the title as written in deeds.
func civility(t models.Title) string {
	if t == models.TitleMrs {
		return "Madame"
	}
	return "Monsieur"
}

// FullName renders "Madame Claire DURAND".
func FullName(p models.Party) string {
	return joinNonEmpty(" ", civility(p.Title), strings.TrimSpace(p.FirstName), strings.ToUpper(strings.TrimSpace(p.LastName)))
}

func shortName(p models.Party) string {
	return joinNonEmpty(" ", civility(p.Title), strings.ToUpper(strings.TrimSpace(p.LastName)))
}

// Identity renders the identity sentence of an individual.
func Identity(p models.Party) string {
	var b strings.Builder
	b.WriteString(FullName(p))
	b.WriteString(", ")
	b.WriteString(gendered(p, "né", "née"))
	b.WriteString(" le ")
	b.WriteString(FormatDate(p.BirthDate))
	b.WriteString(" à ")
	b.WriteString(strings.ToUpper(strings.TrimSpace(p.BirthPlace)))
	if p.BirthPostalCode != "" {
		b.WriteString(" (" + p.BirthPostalCode + ")")
	}
	b.WriteString(", de nationalité ")
	b.WriteString(p.Nationality)
	if p.Profession != "" {
		b.WriteString(", " + p.Profession)
	}
	b.WriteString(".")
	return b.String()
}

// TaxResidence renders the tax-residence declaration of an individual.
func TaxResidence(p models.Party) string {
	if p.TaxResident {
		return gendered(p, "Résident", "Résidente") + " au sens de la réglementation fiscale française."
	}
	return gendered(p, "Non-résident", "Non-résidente") + " au sens de la réglementation fiscale française."
}

// partyBlock renders identity, address and tax residence.
func partyBlock(p models.Party) string {
	lines := []string{Identity(p)}
	if p.Address != "" {
		lines = append(lines, "Demeurant "+p.Address+".")
	}
	lines = append(lines, TaxResidence(p))
	return strings.Join(lines, "\n")
}

// regimeText names a matrimonial regime as it follows "sous le régime".
func regimeText(s models.MaritalStatus) string {
	switch s {
	case models.MaritalMarriedNoContract:
		return "légal de la communauté réduite aux acquêts, à défaut de contrat de mariage préalable à leur union"
	case models.MaritalCommunityOfAcquests:
		return "de la communauté réduite aux acquêts"
	case models.MaritalSeparationOfProperty:
		return "de la séparation de biens"
	case models.MaritalUniversalCommunity:
		return "de la communauté universelle"
	case models.MaritalParticipationAcquests:
		return "de la participation aux acquêts"
	default:
		return ""
	}
}

func contractText(m models.MarriageDetails) string {
	if m.NotaryName == "" {
		return ""
	}
	s := ", aux termes du contrat de mariage reçu par Maître " + m.NotaryName
	if m.NotaryCity != "" {
		s += ", notaire à " + m.NotaryCity
	}
	if d := FormatDate(m.ContractDate); d != "" {
		s += ", le " + d
	}
	return s
}

func celebration(m models.MarriageDetails) string {
	s := ""
	if m.Place != "" {
		s += " à la mairie de " + m.Place
	}
	if d := FormatDate(m.Date); d != "" {
		s += " le " + d
	}
	return s
}

const regimeUnchanged = "Ce régime matrimonial n'a fait l'objet d'aucune modification conventionnelle ou judiciaire depuis."

const pacsUnchanged = "Ce pacte n'a fait l'objet d'aucune modification."

// MaritalClause renders the civil-status clause of a single individual.
func MaritalClause(p models.Party) string {
	p = p.Normalized()
	who := shortName(p)

	switch {
	case p.MaritalStatus == models.MaritalSingle:
		return who + " déclare être célibataire et ne pas être " +
			gendered(p, "lié", "liée") + " par un pacte civil de solidarité."

	case p.MaritalStatus == models.MaritalPacs:
		s := who + " est " + gendered(p, "lié", "liée") + " par un pacte civil de solidarité"
		if p.Pacs.PartnerName != "" {
			s += " avec " + p.Pacs.PartnerName
		}
		s += ", enregistré"
		if d := FormatDate(p.Pacs.Date); d != "" {
			s += " le " + d
		}
		if p.Pacs.Place != "" {
			s += " auprès de " + p.Pacs.Place
		}
		return s + ", sous le régime de la séparation des patrimoines. " + pacsUnchanged

	case p.MaritalStatus == models.MaritalDivorced:
		s := who + " est " + gendered(p, "divorcé", "divorcée")
		if p.Divorce.ExSpouseName != "" {
			s += " de " + p.Divorce.ExSpouseName
		}
		if p.Divorce.Court != "" {
			s += ", suivant jugement rendu par le tribunal judiciaire de " + p.Divorce.Court
			if d := FormatDate(p.Divorce.Date); d != "" {
				s += " le " + d
			}
		}
		return s + ", et non " + gendered(p, "remarié", "remariée") + "."

	case p.MaritalStatus == models.MaritalWidowed:
		s := who + " est " + gendered(p, "veuf", "veuve")
		if p.Widow.DeceasedSpouseName != "" {
			s += " de " + p.Widow.DeceasedSpouseName
		}
		return s + ", et non " + gendered(p, "remarié", "remariée") + "."

	case p.MaritalStatus.IsMarried():
		m := *p.Marriage
		s := who + " est " + gendered(p, "marié", "mariée")
		if m.SpouseName != "" {
			s += " avec " + m.SpouseName
		}
		s += celebration(m) + ", sous le régime " + regimeText(p.MaritalStatus) + contractText(m) + "."
		return s + " " + regimeUnchanged

	default:
		return ""
	}
}

// jointClause renders the single clause shared by two individuals, or "" when their
// situations cannot be expressed jointly.
func jointClause(a, b models.Party) string {
	a, b = a.Normalized(), b.Normalized()
	bothFemale := a.IsFemale() && b.IsFemale()
	plural := func(masculine, feminine string) string {
		if bothFemale {
			return feminine
		}
		return masculine
	}

	switch {
	case a.MaritalStatus.IsMarried():
		m := *a.Marriage
		return plural("Mariés", "Mariées") + " ensemble" + celebration(m) +
			", sous le régime " + regimeText(a.MaritalStatus) + contractText(m) + ". " + regimeUnchanged

	case a.MaritalStatus == models.MaritalSingle && b.MaritalStatus == models.MaritalSingle:
		return plural("Tous deux", "Toutes deux") + " célibataires et non " + plural("liés", "liées") + " par un pacte civil de solidarité."

	case a.MaritalStatus == models.MaritalPacs && b.MaritalStatus == models.MaritalPacs:
		s := plural("Liés entre eux", "Liées entre elles") + " par un pacte civil de solidarité enregistré"
		if d := FormatDate(a.Pacs.Date); d != "" {
			s += " le " + d
		}
		return s + ", sous le régime de la séparation des patrimoines. " + pacsUnchanged

	default:
		return ""
	}
}

// ComposeCivilStatus renders the civil-status paragraphs of the individuals in parties.
// Companies are skipped; use ComposeCompany for them.
//
// One individual yields its block followed by its own marital clause. Two individuals yield
// both blocks followed by one joint clause driven by the first party's status, falling back
// to one clause per party when no joint wording exists. Three or more individuals are
// rendered as independent single-party compositions.
func ComposeCivilStatus(parties []models.Party) string {
	individuals := make([]models.Party, 0, len(parties))
	for _, p := range parties {
		if !p.IsCompany() {
			individuals = append(individuals, p)
		}
	}

	switch len(individuals) {
	case 0:
		return ""
	case 2:
		a, b := individuals[0], individuals[1]
		blocks := partyBlock(a) + "\n\n" + partyBlock(b) + "\n\n"
		if joint := jointClause(a, b); joint != "" {
			return blocks + joint
		}
		return blocks + MaritalClause(a) + "\n" + MaritalClause(b)
	default:
		out := make([]string, 0, len(individuals))
		for _, p := range individuals {
			out = append(out, composeSingle(p))
		}
		return strings.Join(out, "\n\n")
	}
}

func composeSingle(p models.Party) string {
	return partyBlock(p) + "\n\n" + MaritalClause(p)
}

// ComposeCompany renders the identification paragraph of a legal-entity party.
func ComposeCompany(p models.Party) string {
	if p.Company == nil {
		return ""
	}
	c := p.Company

	var b strings.Builder
	b.WriteString("La société ")
	b.WriteString(strings.ToUpper(strings.TrimSpace(c.Name)))
	if c.LegalForm != "" {
		b.WriteString(", " + c.LegalForm)
	}
	if !c.Capital.IsZero() {
		b.WriteString(" au capital de " + EurosInWords(c.Capital.Float()) + " euros (" + Euros(c.Capital.Float()) + " €)")
	}
	if c.RCSNumber != "" {
		b.WriteString(", immatriculée au registre du commerce et des sociétés de " + c.RCSCity + " sous le numéro " + c.RCSNumber)
	}
	if p.Address != "" {
		b.WriteString(", dont le siège social est situé " + p.Address)
	}
	if c.ManagerName != "" {
		manager := models.Party{Title: c.ManagerTitle}
		b.WriteString(", représentée par " + civility(c.ManagerTitle) + " " + c.ManagerName + ", en sa qualité de " +
			gendered(manager, "gérant", "gérante") + " dûment " + gendered(manager, "habilité", "habilitée"))
	}
	b.WriteString(".")
	return b.String()
}

// ComposeParties renders company paragraphs first, then the civil status of the individuals.
func ComposeParties(parties []models.Party) string {
	blocks := []string{}
	for _, p := range parties {
		if p.IsCompany() {
			if s := ComposeCompany(p); s != "" {
				blocks = append(blocks, s)
			}
		}
	}
	if s := ComposeCivilStatus(parties); s != "" {
		blocks = append(blocks, s)
	}
	return strings.Join(blocks, "\n\n")
}

// PartyNames renders "Monsieur Paul MARTIN et Madame Claire DURAND".
func PartyNames(parties []models.Party) string {
	names := make([]string, 0, len(parties))
	for _, p := range parties {
		if p.IsCompany() {
			if p.Company != nil {
				names = append(names, "la société "+strings.ToUpper(p.Company.Name))
			}
			continue
		}
		names = append(names, FullName(p))
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " et " + names[len(names)-1]
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
