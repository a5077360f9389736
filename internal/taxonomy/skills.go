package taxonomy

// HardSkills covers languages, frameworks, platforms and tooling.
var HardSkills = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "golang", "rust",
	"scala", "kotlin", "swift", "php", "perl", "r", "matlab", "julia", "haskell", "clojure",
	"erlang", "elixir", "lua", "objective-c", "dart", "groovy", "f#", "cobol", "fortran",
	"assembly", "bash", "shell", "powershell", "sql", "plsql", "tsql", "html", "html5", "css",
	"css3", "sass", "scss", "less", "tailwind", "bootstrap", "react", "reactjs", "angular",
	"angularjs", "vue", "vuejs", "svelte", "nextjs", "nuxtjs", "gatsby", "remix", "astro", "jquery",
	"webpack", "vite", "rollup", "parcel", "babel", "eslint", "prettier", "nodejs", "expressjs",
	"express", "fastify", "nestjs", "deno", "bun", "django", "flask", "fastapi", "spring",
	"spring boot", "hibernate", "rails", "ruby on rails", "laravel", "symfony", "aspnet", "asp.net",
	".net", "dotnet", ".net core", "entity framework", "gin", "echo", "fiber", "actix", "rocket",
	"mysql", "postgresql", "postgres", "oracle", "sql server", "sqlite", "mongodb", "redis",
	"elasticsearch", "cassandra", "dynamodb", "couchdb", "neo4j", "graphql", "mariadb",
	"cockroachdb", "timescaledb", "influxdb", "firestore", "firebase", "supabase", "prisma",
	"sequelize", "typeorm", "aws", "amazon web services", "azure", "gcp", "google cloud", "docker",
	"kubernetes", "k8s", "terraform", "ansible", "puppet", "chef", "jenkins", "gitlab ci",
	"github actions", "circleci", "travis ci", "argocd", "helm", "prometheus", "grafana", "datadog",
	"splunk", "cloudformation", "pulumi", "vagrant", "openshift", "rancher", "ec2", "s3", "lambda",
	"ecs", "eks", "fargate", "rds", "cloudfront", "route53", "vpc", "iam", "sns", "sqs", "kinesis",
	"redshift", "api gateway", "cloudwatch", "step functions", "machine learning", "deep learning",
	"neural networks", "tensorflow", "pytorch", "keras", "scikit-learn", "sklearn", "pandas",
	"numpy", "scipy", "matplotlib", "seaborn", "plotly", "jupyter", "notebooks", "nlp",
	"natural language processing", "computer vision", "opencv", "transformers", "hugging face",
	"bert", "gpt", "llm", "llms", "large language models", "rag", "langchain", "vector databases",
	"pinecone", "weaviate", "milvus", "qdrant", "embedding", "embeddings", "feature engineering",
	"model training", "mlops", "mlflow", "kubeflow", "sagemaker", "vertex ai", "databricks",
	"spark", "pyspark", "hadoop", "airflow", "luigi", "dagster", "dbt", "etl", "data pipeline",
	"data engineering", "data warehouse", "data lake", "snowflake", "bigquery", "athena", "glue",
	"kafka", "flink", "beam", "unit testing", "integration testing", "e2e testing", "jest", "mocha",
	"cypress", "playwright", "selenium", "puppeteer", "pytest", "unittest", "junit", "testng",
	"rspec", "cucumber", "postman", "insomnia", "load testing", "performance testing", "jmeter",
	"gatling", "locust", "tdd", "bdd", "test automation", "cybersecurity", "penetration testing",
	"owasp", "encryption", "authentication", "authorization", "oauth", "oauth2", "jwt", "saml",
	"sso", "ldap", "active directory", "keycloak", "okta", "ssl", "tls", "https", "certificates",
	"firewall", "waf", "vpn", "siem", "soc", "devsecops", "vulnerability assessment", "ios",
	"android", "react native", "flutter", "xamarin", "ionic", "cordova", "swiftui",
	"jetpack compose", "kotlin multiplatform", "rest", "restful", "rest api", "grpc", "soap",
	"websocket", "websockets", "http", "tcp", "udp", "mqtt", "amqp", "json", "xml", "yaml",
	"protobuf", "openapi", "swagger", "api design", "git", "github", "gitlab", "bitbucket", "svn",
	"mercurial", "version control", "branching", "merging", "code review", "vscode",
	"visual studio code", "intellij", "pycharm", "eclipse", "vim", "neovim", "emacs", "xcode",
	"android studio", "sublime", "ci/cd", "cicd", "continuous integration", "continuous deployment",
	"continuous delivery", "devops", "gitops", "infrastructure as code", "microservices",
	"monolith", "serverless", "event-driven", "domain-driven design", "ddd", "cqrs",
	"event sourcing", "api-first", "design patterns", "solid", "clean architecture", "tableau",
	"power bi", "looker", "metabase", "qlik", "sap", "business intelligence", "data visualization",
	"reporting", "dashboards", "kpi", "analytics", "figma", "sketch", "adobe xd", "photoshop",
	"illustrator", "ui design", "ux design", "ui/ux", "wireframing", "prototyping",
	"design systems", "accessibility", "wcag", "responsive design", "linux", "unix",
	"windows server", "macos", "ubuntu", "centos", "debian", "networking", "load balancing",
	"nginx", "apache", "caching", "cdn", "dns", "system administration", "sysadmin",
	"virtualization", "vmware", "hyper-v", "embedded systems", "iot", "blockchain",
	"smart contracts", "solidity", "web3", "ar", "vr", "unity", "unreal engine", "game development",
}

// SoftSkills covers interpersonal and working-style traits.
var SoftSkills = []string{
	"communication", "written communication", "verbal communication", "presentation",
	"public speaking", "storytelling", "documentation", "technical writing", "active listening",
	"negotiation", "persuasion", "leadership", "team leadership", "people management", "mentoring",
	"coaching", "delegation", "decision making", "strategic thinking", "vision", "influence",
	"motivation", "empowerment", "accountability", "teamwork", "collaboration", "cross-functional",
	"interpersonal", "relationship building", "conflict resolution", "consensus building",
	"stakeholder management", "partnership", "problem solving", "critical thinking",
	"analytical thinking", "troubleshooting", "root cause analysis", "debugging", "creativity",
	"innovation", "lateral thinking", "logical reasoning", "organization", "planning",
	"prioritization", "time management", "multitasking", "attention to detail",
	"deadline management", "resource management", "scheduling", "goal setting", "adaptability",
	"flexibility", "resilience", "agility", "learning agility", "growth mindset",
	"change management", "stress management", "composure", "initiative", "self-motivation",
	"proactive", "self-starter", "entrepreneurial", "ownership", "drive", "ambition", "autonomy",
	"customer service", "customer focus", "client relations", "customer success", "user empathy",
	"service orientation", "professionalism", "integrity", "ethics", "reliability", "dependability",
	"emotional intelligence", "cultural awareness", "diversity", "inclusion", "empathy", "patience",
}
