package nbr

import (
	"slices"
	"strings"
)

// Standard is a reference entry for an electrical code or regulation.
type Standard struct {
	ID       string
	Title    string
	Subtitle string
	Summary  string
	Topics   []string
}

var standards = []Standard{
	{
		ID:       "nbr5410",
		Title:    "ABNT NBR 5410",
		Subtitle: "Low-voltage electrical installations (Instalações elétricas de baixa tensão)",
		Summary: "Conditions low-voltage installations must satisfy to ensure the safety of people and " +
			"animals, the proper operation of the installation and the preservation of property.",
		Topics: []string{
			"Conductor sizing by current-carrying capacity",
			"Protection against electric shock and overvoltage",
			"Earthing and equipotential bonding",
			"Protective devices (RCD, SPD, circuit breakers)",
		},
	},
	{
		ID:       "nbr5419",
		Title:    "ABNT NBR 5419",
		Subtitle: "Protection against lightning (Proteção contra descargas atmosféricas)",
		Summary: "Design, installation and maintenance conditions for lightning protection systems " +
			"protecting buildings and people.",
		Topics: []string{
			"Risk analysis (Part 2)",
			"Physical damage to structures and life hazard (Part 3)",
			"Electrical and electronic systems within structures (Part 4)",
		},
	},
	{
		ID:       "nr10",
		Title:    "NR-10",
		Subtitle: "Safety in electrical installations and services (Segurança em instalações e serviços em eletricidade)",
		Summary: "Regulatory standard setting the minimum requirements for control measures and " +
			"preventive systems in work involving electricity.",
		Topics: []string{
			"Electrical risk control measures",
			"Qualification, training and authorization of workers",
			"Work near energized parts and risk zones",
			"Personal protective equipment (PPE)",
		},
	},
	{
		ID:       "iec60364",
		Title:    "IEC 60364",
		Subtitle: "Low-voltage electrical installations",
		Summary:  "International standard for electrical installations of buildings. Base for many national standards including NBR 5410.",
		Topics: []string{
			"Protection for safety",
			"Selection and erection of electrical equipment",
			"Verification and testing",
		},
	},
}

// Standards returns every catalogued standard.
func Standards() []Standard {
	out := make([]Standard, len(standards))
	for i, s := range standards {
		out[i] = s.clone()
	}
	return out
}

// SearchStandards matches query against title and subtitle, ignoring case.
// An empty query returns the whole catalogue.
func SearchStandards(query string) []Standard {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Standard
	for _, s := range standards {
		if strings.Contains(strings.ToLower(s.Title), q) ||
			strings.Contains(strings.ToLower(s.Subtitle), q) {
			out = append(out, s.clone())
		}
	}
	return out
}

// StandardByID finds a standard by its short identifier (e.g. "nbr5410").
func StandardByID(id string) (Standard, bool) {
	for _, s := range standards {
		if strings.EqualFold(s.ID, id) {
			return s.clone(), true
		}
	}
	return Standard{}, false
}

func (s Standard) clone() Standard {
	s.Topics = slices.Clone(s.Topics)
	return s
}
