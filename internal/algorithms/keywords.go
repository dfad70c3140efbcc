package algorithms

// matchVocabulary is the curated term list keyword extraction matches
// against. Exact, lower-case equality only: "coordinators" does not match a
// vocabulary entry "coordinator" (the suffix rule below catches such
// variants instead). Tunable, but changing it changes every stored match
// score users see.
var matchVocabulary = map[string]struct{}{}

var vocabularyTerms = []string{
	// technical skills
	"python", "java", "javascript", "typescript", "golang", "react",
	"angular", "node", "docker", "kubernetes", "linux", "sql", "mysql",
	"postgresql", "mongodb", "excel", "tableau", "powerbi", "aws", "azure",
	"cloud", "devops", "frontend", "backend", "fullstack", "android", "ios",
	"flutter", "swift", "kotlin", "php", "laravel", "django", "spring",
	"html", "css", "git", "api", "rest", "graphql", "software", "web",
	"database", "data", "analytics", "testing", "automation", "security",
	"networking", "agile", "scrum",

	// business functions
	"marketing", "sales", "finance", "accounting", "audit", "banking",
	"insurance", "legal", "procurement", "logistics", "operations",
	"administration", "management", "leadership", "planning", "budgeting",
	"recruitment", "training", "teaching", "translation", "design",

	// seniority
	"senior", "junior", "lead", "principal", "intern", "graduate",
	"executive", "director",

	// industry terms
	"engineering", "construction", "electrical", "mechanical", "civil",
	"architecture", "medical", "nursing", "pharmacy", "hospitality",
	"retail", "education",
}

// roleSuffixes catches role words and their plural or compound variants by
// substring containment.
var roleSuffixes = []string{
	"engineer",
	"manager",
	"developer",
	"analyst",
	"specialist",
	"coordinator",
	"assistant",
	"supervisor",
}

func init() {
	for _, term := range vocabularyTerms {
		matchVocabulary[term] = struct{}{}
	}
}
