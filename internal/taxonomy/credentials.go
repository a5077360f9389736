package taxonomy

// Certifications are matched as credentials with a fixed evidence strength.
var Certifications = []string{
	"aws certified", "aws solutions architect", "aws developer", "aws sysops", "aws devops",
	"aws machine learning", "aws data analytics", "aws security specialty", "azure certified",
	"azure administrator", "azure developer", "azure solutions architect", "azure devops",
	"azure data engineer", "gcp certified", "google cloud certified",
	"professional cloud architect", "professional data engineer", "professional machine learning",
	"oracle certified", "java certified", "oracle java programmer", "microsoft certified", "mcsa",
	"mcse", "mcsd", "salesforce certified", "salesforce administrator", "salesforce developer",
	"red hat certified", "rhcsa", "rhce", "pmp", "project management professional", "prince2",
	"capm", "certified scrum master", "csm", "psm", "safe", "safe agilist", "pmi-acp", "six sigma",
	"lean six sigma", "green belt", "black belt", "cissp", "cism", "cisa", "ceh",
	"certified ethical hacker", "comptia security+", "comptia network+", "comptia a+", "oscp",
	"ccna", "ccnp", "ccie", "certified data professional", "cdp", "cloudera certified",
	"databricks certified", "snowflake certified", "tableau certified", "power bi certified",
	"google analytics certified", "google ads certified", "kubernetes certified", "cka", "ckad",
	"cks", "docker certified", "dca", "terraform certified", "jenkins certified",
	"gitops certified", "itil", "togaf", "cobit", "iso 27001", "soc 2", "gdpr certified",
	"hipaa certified",
}

// Methodologies lists delivery and engineering practices.
var Methodologies = []string{
	"agile", "scrum", "kanban", "lean", "xp", "extreme programming", "safe", "scaled agile", "less",
	"nexus", "spotify model", "sprint", "standup", "retrospective", "backlog", "user stories",
	"story points", "velocity", "burndown", "waterfall", "prince2", "pmbok", "six sigma",
	"lean six sigma", "kaizen", "pdca", "plan-do-check-act", "tdd", "test-driven development",
	"bdd", "behavior-driven development", "ddd", "domain-driven design", "clean code",
	"solid principles", "pair programming", "mob programming", "code review",
	"trunk-based development", "gitflow", "feature flags", "devops", "devsecops", "sre",
	"site reliability engineering", "ci/cd", "continuous integration", "continuous deployment",
	"continuous delivery", "infrastructure as code", "gitops", "microservices", "monolithic",
	"serverless", "event-driven", "cqrs", "event sourcing", "saga pattern", "api-first",
	"service mesh", "hexagonal architecture", "clean architecture", "etl", "elt", "data mesh",
	"data lake", "data warehouse", "lambda architecture", "kappa architecture", "design thinking",
	"user-centered design", "human-centered design", "design sprint", "rapid prototyping",
}

// Domains lists industries and business areas.
var Domains = []string{
	"fintech", "banking", "financial services", "investment banking", "asset management",
	"wealth management", "insurance", "insurtech", "payments", "trading", "capital markets",
	"risk management", "compliance", "regulatory", "aml", "kyc", "fraud detection", "healthcare",
	"healthtech", "medical", "pharmaceutical", "pharma", "biotech", "life sciences", "clinical",
	"telehealth", "telemedicine", "electronic health records", "ehr", "emr", "hipaa", "fda",
	"e-commerce", "ecommerce", "retail", "marketplace", "supply chain", "logistics", "inventory",
	"point of sale", "pos", "omnichannel", "saas", "paas", "iaas", "cloud computing",
	"enterprise software", "b2b", "b2c", "startup", "scale-up", "big tech", "faang", "media",
	"entertainment", "streaming", "gaming", "social media", "advertising", "adtech", "martech",
	"content management", "edtech", "education", "e-learning", "lms", "learning management",
	"online learning", "mooc", "educational technology", "government", "public sector", "defense",
	"aerospace", "civic tech", "govtech", "automotive", "manufacturing", "energy", "utilities",
	"oil and gas", "renewable energy", "cleantech", "real estate", "proptech", "travel",
	"hospitality", "food tech", "agriculture", "agtech", "telecommunications", "telecom",
	"legal tech", "hr tech", "non-profit", "ngo", "consulting",
}
