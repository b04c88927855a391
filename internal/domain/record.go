package domain

// WorkType is a value of the closed Commonmeta work-type vocabulary.
type WorkType string

const (
	TypeArticle            WorkType = "Article"
	TypeBook               WorkType = "Book"
	TypeBookChapter        WorkType = "BookChapter"
	TypeBookPart           WorkType = "BookPart"
	TypeBookSection        WorkType = "BookSection"
	TypeBookSeries         WorkType = "BookSeries"
	TypeBookSet            WorkType = "BookSet"
	TypeBookTrack          WorkType = "BookTrack"
	TypeComponent          WorkType = "Component"
	TypeDatabase           WorkType = "Database"
	TypeDataset            WorkType = "Dataset"
	TypeDissertation       WorkType = "Dissertation"
	TypeEntry              WorkType = "Entry"
	TypeGrant              WorkType = "Grant"
	TypeJournal            WorkType = "Journal"
	TypeJournalArticle     WorkType = "JournalArticle"
	TypeJournalIssue       WorkType = "JournalIssue"
	TypeJournalVolume      WorkType = "JournalVolume"
	TypePeerReview         WorkType = "PeerReview"
	TypeProceedings        WorkType = "Proceedings"
	TypeProceedingsArticle WorkType = "ProceedingsArticle"
	TypeProceedingsSeries  WorkType = "ProceedingsSeries"
	TypeReport             WorkType = "Report"
	TypeReportComponent    WorkType = "ReportComponent"
	TypeReportSeries       WorkType = "ReportSeries"
	TypeStandard           WorkType = "Standard"

	// TypeOther is the fallback for upstream types outside the vocabulary.
	TypeOther WorkType = "Other"
)

// CreatorKind tells a person name apart from an organization name.
type CreatorKind string

const (
	CreatorPerson       CreatorKind = "Person"
	CreatorOrganization CreatorKind = "Organization"
)

// Creator is one contributor of a work.
// Persons carry GivenName/FamilyName; organizations carry Name only.
type Creator struct {
	Kind CreatorKind

	ID string // Optional ORCID URL (persons only)

	GivenName  string
	FamilyName string
	Name       string

	Affiliations []string
}

// RelationType is a value of the closed Commonmeta relation vocabulary.
type RelationType string

const (
	RelCites            RelationType = "Cites"
	RelContinues        RelationType = "Continues"
	RelDocuments        RelationType = "Documents"
	RelHasPart          RelationType = "HasPart"
	RelHasPreprint      RelationType = "HasPreprint"
	RelHasReview        RelationType = "HasReview"
	RelHasTranslation   RelationType = "HasTranslation"
	RelHasVersion       RelationType = "HasVersion"
	RelIsCitedBy        RelationType = "IsCitedBy"
	RelIsContinuedBy    RelationType = "IsContinuedBy"
	RelIsDerivedFrom    RelationType = "IsDerivedFrom"
	RelIsDocumentedBy   RelationType = "IsDocumentedBy"
	RelIsIdenticalTo    RelationType = "IsIdenticalTo"
	RelIsObsoletedBy    RelationType = "IsObsoletedBy"
	RelIsPartOf         RelationType = "IsPartOf"
	RelIsPreprintOf     RelationType = "IsPreprintOf"
	RelIsReferencedBy   RelationType = "IsReferencedBy"
	RelIsReviewOf       RelationType = "IsReviewOf"
	RelIsSourceOf       RelationType = "IsSourceOf"
	RelIsSupplementTo   RelationType = "IsSupplementTo"
	RelIsSupplementedBy RelationType = "IsSupplementedBy"
	RelIsTranslationOf  RelationType = "IsTranslationOf"
	RelIsVersionOf      RelationType = "IsVersionOf"
	RelObsoletes        RelationType = "Obsoletes"
	RelReferences       RelationType = "References"
)

// Relation links the work to another identified resource.
type Relation struct {
	Type RelationType
	ID   string
}

// Record is the canonical Commonmeta record for one work.
//
// A Record is built once by the mapping engine and treated as immutable.
// ID is always the canonical identifier; Type is always a vocabulary value.
type Record struct {
	ID       string
	Type     WorkType
	Titles   []string
	Creators []Creator

	// PublicationDate is nil when upstream has no usable date.
	PublicationDate *Date

	// Relations are sorted by (Type, ID) without duplicates.
	Relations    []Relation
	Descriptions []string
}
