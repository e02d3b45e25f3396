package config

import "github.com/talentops/candidate-assessor/internal/types"

// Default returns the built-in configuration. Every threshold here carries
// over the tuning of the original deployment; callers override individual
// values through Load.
func Default() *Config {
	return &Config{
		WeightProfiles: map[string]WeightProfile{
			string(types.JobLevelEntry): {
				types.SectionSkills:     0.35,
				types.SectionExperience: 0.15,
				types.SectionEducation:  0.25,
				types.SectionSalary:     0.15,
				types.SectionDomain:     0.10,
			},
			string(types.JobLevelMid): {
				types.SectionSkills:     0.30,
				types.SectionExperience: 0.30,
				types.SectionEducation:  0.15,
				types.SectionSalary:     0.15,
				types.SectionDomain:     0.10,
			},
			string(types.JobLevelSenior): {
				types.SectionSkills:     0.25,
				types.SectionExperience: 0.35,
				types.SectionEducation:  0.10,
				types.SectionSalary:     0.15,
				types.SectionDomain:     0.15,
			},
			string(types.JobLevelExecutive): {
				types.SectionSkills:     0.15,
				types.SectionExperience: 0.40,
				types.SectionEducation:  0.10,
				types.SectionSalary:     0.15,
				types.SectionDomain:     0.20,
			},
		},
		Rules: RulesConfig{
			GCCBonusYears:          2,
			GCCBonus:               8,
			SkillsAmplifyThreshold: 90,
			SkillsAmplifyBonus:     5,
			MustHavePenalty:        -15,
			JobHopTenureMonths:     18,
			JobHopPenalty:          -6,
			SweetSpotLowFrac:       0.90,
			SweetSpotHighFrac:      1.05,
			SweetSpotBonus:         4,
		},
		Interactions: InteractionsConfig{
			StrongSkillsThreshold:  85,
			SkillsCompensateBonus:  4,
			SolidExperienceScore:   75,
			MinorSkillGapLow:       55,
			MinorSkillGapHigh:      70,
			ExperienceCompensation: 3,
			PerfectThreshold:       90,
			PerfectBonus:           3,
		},
		Confidence: ConfidenceConfig{
			CompletenessWeight: 0.40,
			AgreementWeight:    0.35,
			BoundaryWeight:     0.25,
			VeryHighThreshold:  0.85,
			HighThreshold:      0.70,
			MediumThreshold:    0.50,
			BaseSpread:         10,
			DefaultLevel:       0.95,
			ZTable: map[float64]float64{
				0.90: 1.645,
				0.95: 1.96,
				0.99: 2.576,
			},
		},
		Growth: GrowthConfig{
			SkillAcquisitionWeight: 0.25,
			EducationWeight:        0.20,
			TrajectoryWeight:       0.25,
			CertificationWeight:    0.15,
			AdaptabilityWeight:     0.15,
			HighPotentialThreshold: 70,
			StandardThreshold:      40,
			HiddenGemGrowth:        65,
			HiddenGemFit:           70,
			RecentCertWindowMonths: 24,
		},
		Decision: DecisionConfig{
			ImmediateInterview: 80,
			Shortlist:          70,
			Waitlist:           60,
			GrowthOffset:       5,
		},
		Ranking: RankingConfig{
			OverallWeight:    0.40,
			SkillsWeight:     0.20,
			ExperienceWeight: 0.15,
			SalaryWeight:     0.10,
			GrowthWeight:     0.15,
		},
		Taxonomy: defaultTaxonomy(),
	}
}

func defaultTaxonomy() TaxonomyConfig {
	return TaxonomyConfig{
		Synonyms: map[string][]string{
			"javascript":              {"js", "ecmascript", "es6"},
			"typescript":              {"ts"},
			"python":                  {"py", "python3"},
			"golang":                  {"go"},
			"c#":                      {"csharp", "c sharp", ".net c#"},
			"c++":                     {"cpp", "cplusplus"},
			"postgresql":              {"postgres", "psql"},
			"kubernetes":              {"k8s"},
			"amazon web services":     {"aws"},
			"google cloud":            {"gcp", "google cloud platform"},
			"microsoft azure":         {"azure"},
			"machine learning":        {"ml"},
			"artificial intelligence": {"ai"},
			"continuous integration":  {"ci", "ci/cd", "cicd"},
			"react":                   {"reactjs", "react.js"},
			"node.js":                 {"node", "nodejs"},
			"vue":                     {"vuejs", "vue.js"},
			"angular":                 {"angularjs"},
			"sql server":              {"mssql", "microsoft sql server"},
		},
		Related: map[string][]string{
			"python":     {"django", "flask", "fastapi", "pandas", "numpy"},
			"javascript": {"typescript", "react", "vue", "angular", "node.js"},
			"golang":     {"rust", "c", "c++"},
			"postgresql": {"mysql", "sql server", "oracle", "mariadb"},
			"kubernetes": {"docker", "helm", "terraform"},
			"aws":        {"google cloud", "microsoft azure"},
			"react":      {"vue", "angular", "svelte"},
			"machine learning": {"deep learning", "data science", "nlp"},
		},
		SemanticThreshold: 0.72,
		ModernTech: []string{
			"golang", "rust", "typescript", "kubernetes", "docker", "terraform",
			"react", "vue", "graphql", "grpc", "kafka", "spark",
			"machine learning", "deep learning", "llm",
		},
		LegacyTech: []string{
			"cobol", "fortran", "visual basic", "vb6", "delphi", "perl",
			"flash", "actionscript", "silverlight", "jquery", "soap",
		},
		PremiumCerts: []string{
			"aws certified solutions architect",
			"google professional cloud architect",
			"cka", "ckad",
			"pmp", "cissp", "cfa", "cpa",
		},
	}
}
