package taxonomy

// Expansion relates a term to the forms it is interchangeable with.
type Expansion struct {
	Term  string
	Forms []string
}

// Abbreviations maps short forms to their spelled-out variants.
var Abbreviations = []Expansion{
	{Term: "js", Forms: []string{"javascript"}},
	{Term: "ts", Forms: []string{"typescript"}},
	{Term: "py", Forms: []string{"python"}},
	{Term: "rb", Forms: []string{"ruby"}},
	{Term: "ml", Forms: []string{"machine learning"}},
	{Term: "ai", Forms: []string{"artificial intelligence"}},
	{Term: "dl", Forms: []string{"deep learning"}},
	{Term: "nlp", Forms: []string{"natural language processing"}},
	{Term: "cv", Forms: []string{"computer vision"}},
	{Term: "aws", Forms: []string{"amazon web services"}},
	{Term: "gcp", Forms: []string{"google cloud platform", "google cloud"}},
	{Term: "azure", Forms: []string{"microsoft azure"}},
	{Term: "k8s", Forms: []string{"kubernetes"}},
	{Term: "docker", Forms: []string{"containerization", "containers"}},
	{Term: "ci", Forms: []string{"continuous integration"}},
	{Term: "cd", Forms: []string{"continuous deployment", "continuous delivery"}},
	{Term: "cicd", Forms: []string{"ci/cd", "continuous integration", "continuous deployment"}},
	{Term: "api", Forms: []string{"apis", "rest api", "restful"}},
	{Term: "sql", Forms: []string{"mysql", "postgresql", "database"}},
	{Term: "nosql", Forms: []string{"mongodb", "dynamodb", "non-relational"}},
	{Term: "db", Forms: []string{"database", "databases"}},
	{Term: "ui", Forms: []string{"user interface"}},
	{Term: "ux", Forms: []string{"user experience"}},
	{Term: "qa", Forms: []string{"quality assurance", "testing"}},
	{Term: "pm", Forms: []string{"project management", "product management"}},
	{Term: "scrum", Forms: []string{"agile", "sprint"}},
	{Term: "agile", Forms: []string{"scrum", "kanban", "sprint"}},
	{Term: "oop", Forms: []string{"object oriented programming", "object-oriented"}},
	{Term: "fp", Forms: []string{"functional programming"}},
	{Term: "tdd", Forms: []string{"test driven development", "test-driven"}},
	{Term: "bdd", Forms: []string{"behavior driven development"}},
	{Term: "saas", Forms: []string{"software as a service"}},
	{Term: "paas", Forms: []string{"platform as a service"}},
	{Term: "iaas", Forms: []string{"infrastructure as a service"}},
	{Term: "rest", Forms: []string{"restful", "rest api"}},
	{Term: "graphql", Forms: []string{"graph ql"}},
	{Term: "react", Forms: []string{"reactjs", "react.js"}},
	{Term: "vue", Forms: []string{"vuejs", "vue.js"}},
	{Term: "angular", Forms: []string{"angularjs", "angular.js"}},
	{Term: "node", Forms: []string{"nodejs", "node.js"}},
	{Term: "express", Forms: []string{"expressjs", "express.js"}},
	{Term: "django", Forms: []string{"python django"}},
	{Term: "flask", Forms: []string{"python flask"}},
	{Term: "spring", Forms: []string{"spring boot", "spring framework"}},
	{Term: "dotnet", Forms: []string{".net", "dot net", "asp.net"}},
	{Term: "tf", Forms: []string{"tensorflow"}},
	{Term: "pytorch", Forms: []string{"torch"}},
	{Term: "pandas", Forms: []string{"data analysis"}},
	{Term: "numpy", Forms: []string{"numerical python"}},
	{Term: "git", Forms: []string{"github", "gitlab", "version control"}},
	{Term: "linux", Forms: []string{"unix", "ubuntu", "centos", "redhat"}},
	{Term: "bash", Forms: []string{"shell", "shell scripting"}},
	{Term: "powershell", Forms: []string{"windows scripting"}},
	{Term: "html", Forms: []string{"html5"}},
	{Term: "css", Forms: []string{"css3", "styling"}},
	{Term: "sass", Forms: []string{"scss"}},
	{Term: "jwt", Forms: []string{"json web token", "authentication"}},
	{Term: "oauth", Forms: []string{"oauth2", "authentication"}},
	{Term: "sso", Forms: []string{"single sign-on"}},
	{Term: "sdk", Forms: []string{"software development kit"}},
	{Term: "ide", Forms: []string{"integrated development environment"}},
	{Term: "vscode", Forms: []string{"visual studio code"}},
	{Term: "jira", Forms: []string{"atlassian", "issue tracking"}},
	{Term: "confluence", Forms: []string{"atlassian", "documentation"}},
	{Term: "slack", Forms: []string{"team communication"}},
	{Term: "etl", Forms: []string{"extract transform load", "data pipeline"}},
	{Term: "bi", Forms: []string{"business intelligence"}},
	{Term: "kpi", Forms: []string{"key performance indicator", "metrics"}},
	{Term: "roi", Forms: []string{"return on investment"}},
	{Term: "b2b", Forms: []string{"business to business"}},
	{Term: "b2c", Forms: []string{"business to consumer"}},
	{Term: "crm", Forms: []string{"customer relationship management", "salesforce"}},
	{Term: "erp", Forms: []string{"enterprise resource planning"}},
	{Term: "hr", Forms: []string{"human resources"}},
	{Term: "devops", Forms: []string{"dev ops", "development operations"}},
	{Term: "sre", Forms: []string{"site reliability engineering", "site reliability"}},
	{Term: "sla", Forms: []string{"service level agreement"}},
	{Term: "cdn", Forms: []string{"content delivery network"}},
	{Term: "dns", Forms: []string{"domain name system"}},
	{Term: "ssl", Forms: []string{"tls", "https", "security"}},
	{Term: "vpc", Forms: []string{"virtual private cloud"}},
	{Term: "ec2", Forms: []string{"elastic compute", "aws compute"}},
	{Term: "s3", Forms: []string{"aws storage", "object storage"}},
	{Term: "rds", Forms: []string{"relational database service"}},
	{Term: "lambda", Forms: []string{"serverless", "aws lambda"}},
}

// RoleVariations relates role nouns to their activity forms.
var RoleVariations = []Expansion{
	{Term: "manager", Forms: []string{"management", "managing"}},
	{Term: "management", Forms: []string{"manager", "managing"}},
	{Term: "engineer", Forms: []string{"engineering"}},
	{Term: "engineering", Forms: []string{"engineer"}},
	{Term: "developer", Forms: []string{"development", "developing"}},
	{Term: "development", Forms: []string{"developer", "developing"}},
	{Term: "analyst", Forms: []string{"analysis", "analytics", "analyzing"}},
	{Term: "analysis", Forms: []string{"analyst", "analytics"}},
	{Term: "analytics", Forms: []string{"analyst", "analysis"}},
	{Term: "architect", Forms: []string{"architecture", "architecting"}},
	{Term: "architecture", Forms: []string{"architect"}},
	{Term: "administrator", Forms: []string{"administration", "admin"}},
	{Term: "administration", Forms: []string{"administrator", "admin"}},
	{Term: "admin", Forms: []string{"administrator", "administration"}},
	{Term: "consultant", Forms: []string{"consulting", "consultancy"}},
	{Term: "consulting", Forms: []string{"consultant", "consultancy"}},
	{Term: "director", Forms: []string{"directing", "directorship"}},
	{Term: "lead", Forms: []string{"leader", "leading", "leadership"}},
	{Term: "leader", Forms: []string{"lead", "leading", "leadership"}},
	{Term: "leadership", Forms: []string{"lead", "leader", "leading"}},
	{Term: "coordinator", Forms: []string{"coordination", "coordinating"}},
	{Term: "coordination", Forms: []string{"coordinator", "coordinating"}},
	{Term: "specialist", Forms: []string{"specialization", "specialized"}},
	{Term: "supervisor", Forms: []string{"supervision", "supervising"}},
	{Term: "programme", Forms: []string{"program", "programs", "programmes"}},
	{Term: "program", Forms: []string{"programme", "programs", "programmes"}},
	{Term: "project", Forms: []string{"projects"}},
	{Term: "projects", Forms: []string{"project"}},
}

var (
	abbreviationForms map[string][]string
	abbreviationsOf   map[string][]string
	roleVariants      map[string][]string
)

func init() {
	abbreviationForms = make(map[string][]string, len(Abbreviations))
	abbreviationsOf = make(map[string][]string)
	for _, e := range Abbreviations {
		abbreviationForms[e.Term] = e.Forms
		for _, form := range e.Forms {
			abbreviationsOf[form] = append(abbreviationsOf[form], e.Term)
		}
	}

	roleVariants = make(map[string][]string, len(RoleVariations))
	for _, e := range RoleVariations {
		roleVariants[e.Term] = e.Forms
	}
}

// AbbreviationForms returns the spelled-out forms of an abbreviation.
func AbbreviationForms(term string) []string {
	return abbreviationForms[term]
}

// AbbreviationsOf returns the abbreviations that expand to the given full form.
func AbbreviationsOf(form string) []string {
	return abbreviationsOf[form]
}

// RoleVariants returns the related forms of a role noun.
func RoleVariants(word string) []string {
	return roleVariants[word]
}
