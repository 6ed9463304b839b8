package legaltext

import (
	"strings"

	"github.com/mamadbah2/agence/internal/domain/models"
)

// yesNo translates stored booleans. Anything else is returned unchanged.
func yesNo(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "oui", "yes", "1":
		return "Oui"
	case "false", "non", "no", "0":
		return "Non"
	default:
		return v
	}
}

func heatingText(v string) string {
	switch v {
	case "individuel":
		return "Chauffage individuel"
	case "collectif":
		return "Chauffage collectif"
	case "aucun":
		return "Sans chauffage"
	default:
		return v
	}
}

func heatingEnergyText(v string) string {
	switch v {
	case "gaz":
		return "Gaz"
	case "electrique":
		return "Électrique"
	case "fioul":
		return "Fioul"
	case "bois":
		return "Bois"
	case "pompe-a-chaleur":
		return "Pompe à chaleur"
	case "reseau-urbain":
		return "Réseau de chaleur urbain"
	default:
		return v
	}
}

func exposureText(v string) string {
	switch v {
	case "nord":
		return "Nord"
	case "sud":
		return "Sud"
	case "est":
		return "Est"
	case "ouest":
		return "Ouest"
	case "sud-est":
		return "Sud-Est"
	case "sud-ouest":
		return "Sud-Ouest"
	case "nord-est":
		return "Nord-Est"
	case "nord-ouest":
		return "Nord-Ouest"
	default:
		return v
	}
}

func conditionText(v string) string {
	switch v {
	case "neuf":
		return "Neuf"
	case "bon-etat":
		return "Bon état"
	case "a-rafraichir":
		return "À rafraîchir"
	case "a-renover":
		return "À rénover"
	case "renove":
		return "Rénové"
	default:
		return v
	}
}

// CriteriaFields translates every property criterion into its display string, keyed by
// template placeholder.
func CriteriaFields(c models.PropertyCriteria) map[string]string {
	return map[string]string{
		"chauffage":         heatingText(c.Heating),
		"energie_chauffage": heatingEnergyText(c.HeatingEnergy),
		"exposition":        exposureText(c.Exposure),
		"etat_general":      conditionText(c.Condition),
		"ascenseur":         yesNo(c.Elevator),
		"balcon":            yesNo(c.Balcony),
		"terrasse":          yesNo(c.Terrace),
		"jardin":            yesNo(c.Garden),
		"parking":           yesNo(c.Parking),
		"cave":              yesNo(c.Cellar),
		"piscine":           yesNo(c.Pool),
		"meuble":            yesNo(c.Furnished),
	}
}
