package reference

// builtin is the curated dataset behind Default. Alleles are given on the
// strand used by the consumer files the parser accepts.
var builtin = []Definition{
	// Detoxification
	{
		ID: "rs1695", Gene: "GSTP1", Category: Detoxification,
		RiskAllele: "G", NormalAllele: "A",
		Description: "Glutathione S-transferase P1 Ile105Val; reduced conjugation capacity",
		Recommendations: []string{
			"Support glutathione production with sulfur-rich foods (garlic, onions, cruciferous vegetables)",
			"Consider N-acetylcysteine (NAC) supplementation",
			"Minimize exposure to environmental toxins and smoke",
		},
	},
	{
		ID: "rs762551", Gene: "CYP1A2", Category: Detoxification,
		RiskAllele: "C", NormalAllele: "A",
		Description: "CYP1A2*1F; slow caffeine and xenobiotic metabolism",
		Recommendations: []string{
			"Limit caffeine to one cup of coffee per day",
			"Avoid caffeine after noon",
			"Include cruciferous vegetables to support CYP1A2 activity",
		},
	},
	{
		ID: "rs1065852", Gene: "CYP2D6", Category: Detoxification,
		RiskAllele: "A", NormalAllele: "G",
		Description: "CYP2D6*10; reduced metabolism of many common medications",
		Recommendations: []string{
			"Share pharmacogenomic results with your prescriber",
			"Be cautious with codeine, tramadol and some antidepressants",
		},
	},
	{
		ID: "rs4646903", Gene: "CYP1A1", Category: Detoxification,
		RiskAllele: "C", NormalAllele: "T",
		Description: "CYP1A1 MspI polymorphism; increased activation of polycyclic hydrocarbons",
		Recommendations: []string{
			"Avoid charred and smoked meats",
			"Avoid tobacco smoke",
			"Increase intake of cruciferous vegetables and green tea",
		},
	},
	{
		ID: "rs1801280", Gene: "NAT2", Category: Detoxification,
		RiskAllele: "C", NormalAllele: "T",
		Description: "NAT2 slow acetylator allele affecting drug and toxin clearance",
		Recommendations: []string{
			"Be cautious with medications requiring acetylation",
			"Support liver health with cruciferous vegetables",
		},
	},

	// Methylation
	{
		ID: "rs1801133", Gene: "MTHFR", Category: Methylation,
		RiskAllele: "T", NormalAllele: "C",
		Description: "MTHFR C677T; reduced conversion of folate to its active form",
		Recommendations: []string{
			"Consider methylfolate (5-MTHF) instead of folic acid",
			"Eat folate-rich leafy greens daily",
			"Check homocysteine levels periodically",
			"Ensure adequate vitamin B12 and B6 intake",
		},
	},
	{
		ID: "rs1801131", Gene: "MTHFR", Category: Methylation,
		RiskAllele: "C", NormalAllele: "A",
		Description: "MTHFR A1298C; mildly reduced enzyme activity, BH4 cycle impact",
		Recommendations: []string{
			"Consider methylfolate supplementation",
			"Support neurotransmitter synthesis with adequate protein intake",
		},
	},
	{
		ID: "rs1801394", Gene: "MTRR", Category: Methylation,
		RiskAllele: "G", NormalAllele: "A",
		Description: "MTRR A66G; reduced B12 recycling in the methionine cycle",
		Recommendations: []string{
			"Consider methylcobalamin or hydroxocobalamin forms of B12",
			"Monitor B12 status",
		},
	},
	{
		ID: "rs1805087", Gene: "MTR", Category: Methylation,
		RiskAllele: "G", NormalAllele: "A",
		Description: "MTR A2756G; altered methionine synthase activity",
		Recommendations: []string{
			"Maintain adequate B12 and folate intake",
			"Check homocysteine levels periodically",
		},
	},

	// Vitamin D metabolism
	{
		ID: "rs2228570", Gene: "VDR", Category: VitaminD,
		RiskAllele: "T", NormalAllele: "C",
		Description: "VDR FokI; less active vitamin D receptor isoform",
		Recommendations: []string{
			"Test 25-hydroxyvitamin D levels annually",
			"Get regular safe sun exposure",
			"Consider vitamin D3 with K2 if levels are low",
		},
	},
	{
		ID: "rs731236", Gene: "VDR", Category: VitaminD,
		RiskAllele: "C", NormalAllele: "T",
		Description: "VDR TaqI; altered vitamin D receptor expression",
		Recommendations: []string{
			"Include vitamin D rich foods such as fatty fish and eggs",
			"Test 25-hydroxyvitamin D levels annually",
		},
	},
	{
		ID: "rs2282679", Gene: "GC", Category: VitaminD,
		RiskAllele: "G", NormalAllele: "T",
		Description: "Vitamin D binding protein variant associated with lower circulating vitamin D",
		Recommendations: []string{
			"Consider vitamin D3 supplementation guided by blood levels",
			"Take vitamin D with a fat-containing meal",
		},
	},
	{
		ID: "rs10741657", Gene: "CYP2R1", Category: VitaminD,
		RiskAllele: "G", NormalAllele: "A",
		Description: "CYP2R1 25-hydroxylase variant associated with lower vitamin D activation",
		Recommendations: []string{
			"Test 25-hydroxyvitamin D levels before and after supplementing",
		},
	},

	// Fat metabolism
	{
		ID: "rs9939609", Gene: "FTO", Category: FatMetabolism,
		RiskAllele: "A", NormalAllele: "T",
		Description: "FTO obesity-associated variant affecting appetite regulation",
		Recommendations: []string{
			"Focus on portion control and mindful eating",
			"Prioritize a protein-rich breakfast",
			"Include regular high-intensity interval training",
		},
	},
	{
		ID: "rs17782313", Gene: "MC4R", Category: FatMetabolism,
		RiskAllele: "C", NormalAllele: "T",
		Description: "Melanocortin 4 receptor variant affecting appetite and energy balance",
		Recommendations: []string{
			"Keep regular meal timing to regulate appetite",
			"Favor high-protein, high-fiber meals for satiety",
		},
	},
	{
		ID: "rs5082", Gene: "APOA2", Category: FatMetabolism,
		RiskAllele: "C", NormalAllele: "T",
		Description: "APOA2 -265T>C; weight gain sensitivity to saturated fat",
		Recommendations: []string{
			"Keep saturated fat below 22 grams per day",
			"Replace saturated fats with olive oil, nuts and avocado",
		},
	},
	{
		ID: "rs662799", Gene: "APOA5", Category: FatMetabolism,
		RiskAllele: "C", NormalAllele: "T",
		Description: "APOA5 -1131T>C; elevated triglyceride response to dietary fat",
		Recommendations: []string{
			"Monitor fasting triglycerides",
			"Increase omega-3 fatty acid intake",
			"Limit refined carbohydrates and alcohol",
		},
	},

	// Mitochondrial function
	{
		ID: "rs8192678", Gene: "PPARGC1A", Category: Mitochondrial,
		RiskAllele: "T", NormalAllele: "C",
		Description: "PGC-1alpha Gly482Ser; reduced mitochondrial biogenesis signaling",
		Recommendations: []string{
			"Combine endurance and resistance training",
			"Consider cold exposure and intermittent fasting to stimulate PGC-1alpha",
		},
	},
	{
		ID: "rs659366", Gene: "UCP2", Category: Mitochondrial,
		RiskAllele: "T", NormalAllele: "C",
		Description: "UCP2 -866G>A; altered mitochondrial uncoupling and energy efficiency",
		Recommendations: []string{
			"Keep a consistent aerobic exercise routine",
			"Limit refined sugars",
		},
	},
	{
		ID: "rs4880", Gene: "SOD2", Category: Mitochondrial,
		RiskAllele: "T", NormalAllele: "C",
		Description: "SOD2 Ala16Val; reduced mitochondrial import of superoxide dismutase",
		Recommendations: []string{
			"Increase intake of antioxidant-rich foods",
			"Minimize oxidative stress from pollution and smoking",
		},
	},
	{
		ID: "rs1050450", Gene: "GPX1", Category: Mitochondrial,
		RiskAllele: "T", NormalAllele: "C",
		Description: "GPX1 Pro198Leu; lower glutathione peroxidase activity",
		Recommendations: []string{
			"Ensure adequate selenium intake (for example Brazil nuts)",
		},
	},

	// Cognitive traits
	{
		ID: "rs4680", Gene: "COMT", Category: Cognitive,
		RiskAllele: "A", NormalAllele: "G",
		Description: "COMT Val158Met; slower dopamine clearance and higher stress sensitivity",
		Recommendations: []string{
			"Practice daily stress management techniques",
			"Ensure adequate magnesium intake",
			"Moderate caffeine intake",
		},
	},
	{
		ID: "rs6265", Gene: "BDNF", Category: Cognitive,
		RiskAllele: "T", NormalAllele: "C",
		Description: "BDNF Val66Met; reduced activity-dependent BDNF secretion",
		Recommendations: []string{
			"Regular aerobic exercise to boost BDNF",
			"Engage in new learning and cognitive challenges",
			"Ensure 7-9 hours of sleep",
		},
	},
	{
		ID: "rs429358", Gene: "APOE", Category: Cognitive,
		RiskAllele: "C", NormalAllele: "T",
		Description: "APOE e4-defining variant associated with increased Alzheimer's risk",
		Recommendations: []string{
			"Follow a Mediterranean-style diet",
			"Prioritize quality sleep",
			"Keep cardiovascular risk factors under control",
		},
	},
	{
		ID: "rs53576", Gene: "OXTR", Category: Cognitive,
		RiskAllele: "A", NormalAllele: "G",
		Description: "Oxytocin receptor variant associated with stress reactivity",
		Recommendations: []string{
			"Maintain regular social connection",
			"Consider mindfulness practice",
		},
	},

	// Aging & longevity
	{
		ID: "rs7412", Gene: "APOE", Category: Aging,
		RiskAllele: "T", NormalAllele: "C",
		Description: "APOE e2-defining variant affecting lipid transport",
		Recommendations: []string{
			"Monitor triglycerides and cholesterol regularly",
			"Maintain a heart-healthy diet rich in omega-3 fatty acids",
		},
	},
	{
		ID: "rs2802292", Gene: "FOXO3", Category: Aging,
		RiskAllele: "T", NormalAllele: "G",
		Description: "FOXO3 variant; absence of the longevity-associated G allele",
		Recommendations: []string{
			"Consider time-restricted eating",
			"Include polyphenol-rich foods such as berries and green tea",
			"Regular moderate exercise",
		},
	},
	{
		ID: "rs1800012", Gene: "COL1A1", Category: Aging,
		RiskAllele: "T", NormalAllele: "G",
		Description: "COL1A1 Sp1 binding site variant affecting collagen production",
		Recommendations: []string{
			"Increase vitamin C intake for collagen synthesis",
			"Protect skin from UV damage",
			"Include weight-bearing exercise for bone health",
		},
	},
}
