package legaltext

import "github.com/mamadbah2/agence/internal/domain/models"

var durationTexts = map[models.MandateType]string{
	models.MandateSimple: "Le présent mandat est consenti pour une durée de douze mois à compter de sa signature. " +
		"Il ne pourra être dénoncé par l'une ou l'autre des parties pendant une période irrévocable de trois mois. " +
		"Passé ce délai de trois mois, il pourra être dénoncé à tout moment par chacune des parties, " +
		"à charge pour celle qui entend y mettre fin d'en aviser l'autre quinze jours au moins à l'avance " +
		"par lettre recommandée avec demande d'avis de réception, conformément à l'article 78 du décret " +
		"n° 72-678 du 20 juillet 1972. A défaut de dénonciation, il prendra fin de plein droit au terme de la " +
		"durée ci-dessus. Le mandant conserve la faculté de vendre par lui-même ou par l'intermédiaire " +
		"d'autres mandataires, sous réserve d'en informer immédiatement le mandataire en lui précisant les " +
		"nom et adresse de l'acquéreur ainsi que le nom de l'intermédiaire éventuel, afin de lui éviter toute " +
		"démarche inutile.",

	models.MandateExclusive: "Le présent mandat est consenti pour une durée de douze mois à compter de sa signature. " +
		"Il est irrévocable pendant une période de trois mois et ne pourra être dénoncé par aucune des " +
		"parties durant cette période. Passé ce délai de trois mois, il pourra être dénoncé à tout moment " +
		"par chacune des parties, à charge pour celle qui entend y mettre fin d'en aviser l'autre quinze " +
		"jours au moins à l'avance par lettre recommandée avec demande d'avis de réception, conformément " +
		"à l'article 78 du décret n° 72-678 du 20 juillet 1972. A défaut de dénonciation, il prendra fin de " +
		"plein droit au terme de la durée ci-dessus. Pendant toute la durée du mandat et de ses " +
		"renouvellements, le mandant s'interdit de négocier directement ou indirectement la vente des biens " +
		"désignés et s'engage à diriger vers le mandataire toutes les demandes qui lui seraient adressées " +
		"personnellement.",

	models.MandateSemiExclusive: "Le présent mandat est consenti pour une durée de douze mois à compter de sa signature. " +
		"Il est irrévocable pendant une période de trois mois et ne pourra être dénoncé par aucune des " +
		"parties durant cette période. Passé ce délai de trois mois, il pourra être dénoncé à tout moment " +
		"par chacune des parties, à charge pour celle qui entend y mettre fin d'en aviser l'autre quinze " +
		"jours au moins à l'avance par lettre recommandée avec demande d'avis de réception, conformément " +
		"à l'article 78 du décret n° 72-678 du 20 juillet 1972. A défaut de dénonciation, il prendra fin de " +
		"plein droit au terme de la durée ci-dessus. Pendant toute la durée du mandat, le mandant s'interdit " +
		"de confier la vente des biens désignés à un autre intermédiaire. Il conserve toutefois la faculté " +
		"de vendre par lui-même à un acquéreur qui ne lui aurait pas été présenté par le mandataire ni par " +
		"un intermédiaire quelconque, sous réserve d'en informer le mandataire sans délai par lettre " +
		"recommandée avec demande d'avis de réception en lui précisant les nom et adresse de l'acquéreur, " +
		"ainsi que le prix et les conditions de la vente. Le mandant s'interdit de vendre par lui-même à un " +
		"prix inférieur à celui stipulé au présent mandat pendant sa durée. En cas de vente conclue par le " +
		"mandant avec un acquéreur présenté par le mandataire, pendant la durée du mandat ou dans les douze " +
		"mois suivant son expiration, le mandataire aura droit à l'intégralité de sa rémunération.",
}

const engagementsSharedText = "Le mandataire s'engage à rendre compte au mandant de l'accomplissement de son mandat " +
	"et à l'informer de toutes les démarches effectuées, notamment en lui adressant un compte rendu dans un " +
	"délai de huit jours suivant chaque visite. Il s'engage à réaliser à ses frais toutes les actions de " +
	"publicité qu'il jugera utiles, sur tous supports, et à présenter le bien à tout acquéreur potentiel. " +
	"Le mandant s'engage à fournir au mandataire l'ensemble des pièces et diagnostics techniques " +
	"obligatoires, à lui permettre de faire visiter les biens pendant les heures ouvrables, et à l'informer " +
	"sans délai de toute modification juridique ou matérielle les affectant. Le mandant s'oblige, pendant " +
	"la durée du mandat et dans les douze mois suivant son expiration, à ne pas traiter directement avec un " +
	"acquéreur présenté par le mandataire ou ayant visité les biens avec lui."

const engagementsSemiExclusiveText = "Le mandataire s'engage à rendre compte au mandant de l'accomplissement de son mandat " +
	"et à l'informer de toutes les démarches effectuées, notamment en lui adressant un compte rendu dans un " +
	"délai de huit jours suivant chaque visite. Il s'engage à réaliser à ses frais toutes les actions de " +
	"publicité qu'il jugera utiles, sur tous supports, et à présenter le bien à tout acquéreur potentiel. " +
	"Le mandant s'engage à fournir au mandataire l'ensemble des pièces et diagnostics techniques " +
	"obligatoires et à lui permettre de faire visiter les biens pendant les heures ouvrables. Le mandant " +
	"conserve la faculté de vendre par lui-même, sans le concours d'aucun intermédiaire, à un acquéreur " +
	"qu'il aura trouvé seul ; il devra alors justifier auprès du mandataire de l'origine de cet acquéreur " +
	"et lui notifier la vente dans les huit jours de sa conclusion. Dans ce cas, aucune rémunération ne " +
	"sera due au mandataire. En revanche, le mandant s'oblige, pendant la durée du mandat et dans les " +
	"douze mois suivant son expiration, à ne pas traiter directement avec un acquéreur présenté par le " +
	"mandataire ou ayant visité les biens avec lui, à peine de lui verser une indemnité forfaitaire égale " +
	"au montant de la rémunération prévue au présent mandat."

var engagementsTexts = map[models.MandateType]string{
	models.MandateSimple:        engagementsSharedText,
	models.MandateExclusive:     engagementsSharedText,
	models.MandateSemiExclusive: engagementsSemiExclusiveText,
}

var objectTexts = map[models.MandateType]string{
	models.MandateSimple: "Le mandant confie au mandataire, qui l'accepte, un mandat simple de vente, " +
		"sans exclusivité, portant sur les biens désignés ci-après.",
	models.MandateExclusive: "Le mandant confie au mandataire, qui l'accepte, un mandat exclusif de vente " +
		"portant sur les biens désignés ci-après.",
	models.MandateSemiExclusive: "Le mandant confie au mandataire, qui l'accepte, un mandat semi-exclusif de vente " +
		"portant sur les biens désignés ci-après, le mandant se réservant le droit de vendre par lui-même.",
}

var mandateTypeLabels = map[models.MandateType]string{
	models.MandateSimple:        "Mandat simple",
	models.MandateExclusive:     "Mandat exclusif",
	models.MandateSemiExclusive: "Mandat semi-exclusif",
}

var occupationTexts = map[models.OccupationStatus]string{
	models.OccupiedBySeller: "Le mandant déclare que les biens sont actuellement occupés par lui-même et " +
		"qu'ils seront libres de toute occupation au jour de la signature de l'acte authentique.",
	models.OccupiedByTenant: "Le mandant déclare que les biens sont actuellement loués et seront vendus " +
		"occupés, le bail en cours étant transmis à l'acquéreur.",
	models.OccupationFree: "Le mandant déclare que les biens sont libres de toute location ou occupation.",
}

var dpeTexts = map[models.DPEStatus]string{
	models.DPEDone: "Le diagnostic de performance énergétique a été réalisé et sera annexé au présent mandat.",
	models.DPEInProgress: "Le diagnostic de performance énergétique est en cours de réalisation. Le mandant " +
		"s'engage à le remettre au mandataire dès sa réception, avant toute diffusion d'annonce.",
	models.DPENotDone: "Le diagnostic de performance énergétique n'a pas encore été réalisé. Le mandant s'engage " +
		"à le faire établir sans délai, aucune annonce ne pouvant être diffusée sans les mentions qu'il contient.",
	models.DPEExempt: "Les biens ne sont pas soumis à l'obligation de diagnostic de performance énergétique.",
}

// DurationText returns the duration and termination clause of a mandate type.
// Unknown types fall back to the simple mandate wording.
func DurationText(t models.MandateType) string {
	if s, ok := durationTexts[t]; ok {
		return s
	}
	return durationTexts[models.MandateSimple]
}

// EngagementsText returns the mutual obligations clause of a mandate type.
func EngagementsText(t models.MandateType) string {
	if s, ok := engagementsTexts[t]; ok {
		return s
	}
	return engagementsSharedText
}

// ObjectText returns the one-sentence object of the mandate.
func ObjectText(t models.MandateType) string {
	if s, ok := objectTexts[t]; ok {
		return s
	}
	return objectTexts[models.MandateSimple]
}

// MandateTypeLabel returns the display label of a mandate type, or the raw value when unknown.
func MandateTypeLabel(t models.MandateType) string {
	if s, ok := mandateTypeLabels[t]; ok {
		return s
	}
	return string(t)
}

// OccupationStatusText defaults to the occupied-by-seller wording.
func OccupationStatusText(s models.OccupationStatus) string {
	if text, ok := occupationTexts[s]; ok {
		return text
	}
	return occupationTexts[models.OccupiedBySeller]
}

// DPEStatusText defaults to the not-yet-done wording.
func DPEStatusText(s models.DPEStatus) string {
	if text, ok := dpeTexts[s]; ok {
		return text
	}
	return dpeTexts[models.DPENotDone]
}

// FeesPayerText returns the short statement of who bears the fees. Unknown payers are
// treated as the seller.
func FeesPayerText(p models.FeePayer) string {
	if p == models.FeesPaidByBuyer {
		return "Les honoraires sont à la charge de l'acquéreur."
	}
	return "Les honoraires sont à la charge du vendeur."
}

// FeesClause embeds the fee amount in the payer sentence. When the buyer pays, the net
// seller price is disclosed as well.
func FeesClause(p models.FeePayer, feesTTC, netPrice float64) string {
	amount := EurosInWords(feesTTC) + " euros (" + Euros(feesTTC) + " €) toutes taxes comprises"
	if p == models.FeesPaidByBuyer {
		return "Les honoraires du mandataire, d'un montant de " + amount + ", sont à la charge de l'acquéreur. " +
			"Le prix net revenant au vendeur, hors honoraires, s'élève à " + EurosInWords(netPrice) +
			" euros (" + Euros(netPrice) + " €)."
	}
	return "Les honoraires du mandataire, d'un montant de " + amount + ", sont à la charge du vendeur."
}

// CarrezText renders the Carrez disclaimer attached to the first lot. An empty surface yields "".
func CarrezText(surface string, guarantor models.CarrezGuarantor) string {
	if ParseAmount(surface) == 0 {
		return ""
	}
	head := "La superficie de la partie privative de ce lot, soumise aux dispositions de l'article 46 de la loi " +
		"n° 65-557 du 10 juillet 1965, est de " + surface + " m²"
	if guarantor == models.CarrezByDiagnostician {
		return head + ", ainsi qu'il résulte de l'attestation établie par un diagnostiqueur professionnel, " +
			"qui sera annexée à l'avant-contrat."
	}
	return head + ", telle que déclarée par le mandant sous sa seule responsabilité. Le mandant est informé " +
		"que si la superficie réelle se révèle inférieure de plus de 5 % à celle exprimée, l'acquéreur pourra " +
		"solliciter une diminution du prix proportionnelle à la moindre mesure."
}
