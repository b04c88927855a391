package mapping

import "github.com/aalvaropc/commonmeta/internal/domain"

// workTypes maps Crossref work types to the Commonmeta vocabulary.
// Read-only after package initialization.
var workTypes = map[string]domain.WorkType{
	"book":                domain.TypeBook,
	"book-chapter":        domain.TypeBookChapter,
	"book-part":           domain.TypeBookPart,
	"book-section":        domain.TypeBookSection,
	"book-series":         domain.TypeBookSeries,
	"book-set":            domain.TypeBookSet,
	"book-track":          domain.TypeBookTrack,
	"component":           domain.TypeComponent,
	"database":            domain.TypeDatabase,
	"dataset":             domain.TypeDataset,
	"dissertation":        domain.TypeDissertation,
	"edited-book":         domain.TypeBook,
	"grant":               domain.TypeGrant,
	"journal":             domain.TypeJournal,
	"journal-article":     domain.TypeJournalArticle,
	"journal-issue":       domain.TypeJournalIssue,
	"journal-volume":      domain.TypeJournalVolume,
	"monograph":           domain.TypeBook,
	"other":               domain.TypeOther,
	"peer-review":         domain.TypePeerReview,
	"posted-content":      domain.TypeArticle,
	"proceedings":         domain.TypeProceedings,
	"proceedings-article": domain.TypeProceedingsArticle,
	"proceedings-series":  domain.TypeProceedingsSeries,
	"reference-book":      domain.TypeBook,
	"reference-entry":     domain.TypeEntry,
	"report":              domain.TypeReport,
	"report-component":    domain.TypeReportComponent,
	"report-series":       domain.TypeReportSeries,
	"standard":            domain.TypeStandard,
}

// relationTypes maps Crossref relation keys to the Commonmeta vocabulary.
// Read-only after package initialization.
var relationTypes = map[string]domain.RelationType{
	"cites":              domain.RelCites,
	"is-cited-by":        domain.RelIsCitedBy,
	"references":         domain.RelReferences,
	"is-referenced-by":   domain.RelIsReferencedBy,
	"has-preprint":       domain.RelHasPreprint,
	"is-preprint-of":     domain.RelIsPreprintOf,
	"has-version":        domain.RelHasVersion,
	"is-version-of":      domain.RelIsVersionOf,
	"has-part":           domain.RelHasPart,
	"is-part-of":         domain.RelIsPartOf,
	"has-review":         domain.RelHasReview,
	"is-review-of":       domain.RelIsReviewOf,
	"is-supplement-to":   domain.RelIsSupplementTo,
	"is-supplemented-by": domain.RelIsSupplementedBy,
	"is-identical-to":    domain.RelIsIdenticalTo,
	"continues":          domain.RelContinues,
	"is-continued-by":    domain.RelIsContinuedBy,
	"is-derived-from":    domain.RelIsDerivedFrom,
	"has-derivation":     domain.RelIsSourceOf,
	"is-translation-of":  domain.RelIsTranslationOf,
	"has-translation":    domain.RelHasTranslation,
	"is-documented-by":   domain.RelIsDocumentedBy,
	"documents":          domain.RelDocuments,
	"is-replaced-by":     domain.RelIsObsoletedBy,
	"replaces":           domain.RelObsoletes,
}

// WorkType returns the Commonmeta type for a Crossref type, or TypeOther.
func WorkType(crossrefType string) domain.WorkType {
	if t, ok := workTypes[crossrefType]; ok {
		return t
	}
	return domain.TypeOther
}

// RelationType returns the Commonmeta relation for a Crossref relation key.
func RelationType(crossrefKey string) (domain.RelationType, bool) {
	t, ok := relationTypes[crossrefKey]
	return t, ok
}
