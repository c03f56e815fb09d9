package catalog

import "mvp90terminal/internal/intel"

var (
	amt  = intel.MustAmount
	date = intel.MustDate
)

func datePtr(v string) *intel.Date {
	d := date(v)
	return &d
}

// Samples returns a fresh copy of the built-in sample dataset.
func Samples() Dataset {
	return Dataset{
		Signals:    sampleSignals(),
		Founders:   sampleFounders(),
		Deals:      sampleDeals(),
		SavedItems: sampleSavedItems(),
		Ideas:      sampleIdeas(),
		Digest:     sampleDigest(),
		Sectors:    sampleSectors(),
		TopIdeas:   sampleTopIdeas(),
		Sources:    sampleSources(),
	}
}

func sampleSignals() []intel.StartupSignal {
	return []intel.StartupSignal{
		{
			ID: 1, Name: "NeuroLink AI", Pitch: "Brain-computer interface for productivity enhancement",
			NoveltyScore: 9, CloneabilityScore: 2, IndiaMarketFit: 6, EstimatedBuildCost: 250000,
			Industry: "AI/ML", Region: "North America", Source: "GitHub",
			Team: "Ex-Neuralink engineers", FounderBackground: "PhD in Neuroscience, Stanford",
			Traction:  intel.TractionSignals{GithubStars: 1250, TwitterFollowers: 5600, SubstackPosts: 12},
			ActionTag: intel.ActionBuild, LastUpdated: "2 min ago",
		},
		{
			ID: 2, Name: "CropSense", Pitch: "IoT sensors for precision agriculture in emerging markets",
			NoveltyScore: 7, CloneabilityScore: 6, IndiaMarketFit: 9, EstimatedBuildCost: 75000,
			Industry: "AgTech", Region: "Asia", Source: "ProductHunt",
			Team: "IIT Delhi alumni", FounderBackground: "Agricultural Engineering, 10+ years farming",
			Traction:  intel.TractionSignals{GithubStars: 340, TwitterFollowers: 2100, SubstackPosts: 8},
			ActionTag: intel.ActionScout, LastUpdated: "5 min ago",
		},
		{
			ID: 3, Name: "QuantumSecure", Pitch: "Quantum-resistant encryption for financial institutions",
			NoveltyScore: 8, CloneabilityScore: 1, IndiaMarketFit: 7, EstimatedBuildCost: 500000,
			Industry: "FinTech", Region: "Europe", Source: "Reddit",
			Team: "Ex-IBM Quantum team", FounderBackground: "PhD Quantum Computing, MIT",
			Traction:  intel.TractionSignals{GithubStars: 890, TwitterFollowers: 3400, SubstackPosts: 15},
			ActionTag: intel.ActionStore, LastUpdated: "8 min ago",
		},
		{
			ID: 4, Name: "MediChain", Pitch: "Blockchain-based medical records for rural healthcare",
			NoveltyScore: 6, CloneabilityScore: 7, IndiaMarketFit: 8, EstimatedBuildCost: 120000,
			Industry: "HealthTech", Region: "Asia", Source: "Twitter",
			Team: "Healthcare + Blockchain experts", FounderBackground: "MD + Computer Science, AIIMS",
			Traction:  intel.TractionSignals{GithubStars: 567, TwitterFollowers: 1800, SubstackPosts: 6},
			ActionTag: intel.ActionBuild, LastUpdated: "12 min ago",
		},
		{
			ID: 5, Name: "EcoLogistics", Pitch: "Carbon-neutral last-mile delivery optimization",
			NoveltyScore: 5, CloneabilityScore: 8, IndiaMarketFit: 7, EstimatedBuildCost: 90000,
			Industry: "Logistics", Region: "Global", Source: "GitHub",
			Team: "Ex-Amazon logistics team", FounderBackground: "Operations Research, Wharton MBA",
			Traction:  intel.TractionSignals{GithubStars: 234, TwitterFollowers: 950, SubstackPosts: 4},
			ActionTag: intel.ActionScout, LastUpdated: "15 min ago",
		},
	}
}

func sampleFounders() []intel.FounderDetails {
	return []intel.FounderDetails{
		{
			ID: 1, Name: "Priya Sharma", CurrentRole: "CEO & Co-founder", Company: "NeuroLink AI",
			Education: []string{"PhD Neuroscience, Stanford University", "BTech Computer Science, IIT Delhi"},
			WorkBackground: []string{
				"Senior Research Scientist at Neuralink (2019-2022)",
				"AI Research Lead at Google DeepMind (2017-2019)",
				"Software Engineer at Microsoft (2015-2017)",
			},
			PastCompanies: []string{"BrainTech Solutions (Acquired by Meta)", "CogniCare (Failed)"},
			SocialLinks: intel.SocialLinks{
				Twitter: "@priyasharma_ai", Github: "priyasharma",
				LinkedIn: "priya-sharma-neuroscience", Substack: "neurotechfuture",
			},
			NetworkOverlaps: intel.NetworkOverlaps{
				VCs:       []string{"Sequoia Capital", "Andreessen Horowitz", "Accel Partners"},
				Operators: []string{"Elon Musk (Neuralink)", "Demis Hassabis (DeepMind)", "Satya Nadella (Microsoft)"},
			},
			RecentActivity: []intel.Activity{
				{Type: "Publication", Description: "Published paper on brain-computer interfaces in Nature", Date: "2 weeks ago"},
				{Type: "Speaking", Description: "Keynote at NeuroTech Conference 2024", Date: "1 month ago"},
				{Type: "Funding", Description: "Raised $2M seed round led by Sequoia", Date: "3 months ago"},
			},
			FundingHistory: []intel.FundingRound{
				{Company: "NeuroLink AI", Round: "Seed", Amount: amt("$2M"), Year: "2024"},
				{Company: "BrainTech Solutions", Round: "Series A", Amount: amt("$5M"), Year: "2020"},
			},
			Reputation: intel.Reputation{
				Score:   8.5,
				Factors: []string{"Strong technical background", "Previous successful exit", "Top-tier network"},
			},
		},
		{
			ID: 2, Name: "Rajesh Kumar", CurrentRole: "Founder & CTO", Company: "CropSense",
			Education: []string{"MS Agricultural Engineering, IIT Kharagpur", "BTech Electronics, NIT Trichy"},
			WorkBackground: []string{
				"Senior Engineer at John Deere (2018-2023)",
				"IoT Solutions Architect at Tata Consultancy Services (2015-2018)",
				"Hardware Engineer at Mahindra Tech (2013-2015)",
			},
			PastCompanies: []string{"FarmTech India (Bootstrapped, Still Running)"},
			SocialLinks: intel.SocialLinks{
				Twitter: "@rajesh_agtech", Github: "rajeshkumar", LinkedIn: "rajesh-kumar-agtech",
			},
			NetworkOverlaps: intel.NetworkOverlaps{
				VCs:       []string{"Omnivore Partners", "Ankur Capital", "Blume Ventures"},
				Operators: []string{"Ratan Tata (Tata Group)", "Anand Mahindra (Mahindra Group)"},
			},
			RecentActivity: []intel.Activity{
				{Type: "Product Launch", Description: "Launched CropSense v2.0 with AI-powered insights", Date: "1 week ago"},
				{Type: "Partnership", Description: "Signed MOU with Karnataka Government", Date: "2 weeks ago"},
				{Type: "Award", Description: "Won AgTech Innovation Award 2024", Date: "1 month ago"},
			},
			FundingHistory: []intel.FundingRound{
				{Company: "CropSense", Round: "Pre-Seed", Amount: amt("$500K"), Year: "2023"},
			},
			Reputation: intel.Reputation{
				Score:   7.2,
				Factors: []string{"Deep domain expertise", "Strong government connections", "Proven execution"},
			},
		},
		{
			ID: 3, Name: "Dr. Sarah Chen", CurrentRole: "CEO", Company: "QuantumSecure",
			Education: []string{"PhD Quantum Computing, MIT", "MS Physics, Caltech", "BS Mathematics, Harvard"},
			WorkBackground: []string{
				"Principal Researcher at IBM Quantum (2020-2024)",
				"Quantum Algorithm Scientist at Google Quantum AI (2018-2020)",
				"Postdoc Researcher at MIT (2016-2018)",
			},
			PastCompanies: []string{"QuantumLeap (Acquired by IBM)"},
			SocialLinks: intel.SocialLinks{
				Twitter: "@sarahchen_quantum", Github: "sarahchen",
				LinkedIn: "sarah-chen-quantum", Substack: "quantumfuture",
			},
			NetworkOverlaps: intel.NetworkOverlaps{
				VCs:       []string{"Bessemer Venture Partners", "NEA", "Greylock Partners"},
				Operators: []string{"John Preskill (Caltech)", "Peter Shor (MIT)", "Hartmut Neven (Google)"},
			},
			RecentActivity: []intel.Activity{
				{Type: "Research", Description: "Breakthrough in quantum error correction published in Science", Date: "3 days ago"},
				{Type: "Funding", Description: "Closed $10M Series A led by Bessemer", Date: "2 weeks ago"},
				{Type: "Patent", Description: "Filed patent for quantum-resistant encryption algorithm", Date: "1 month ago"},
			},
			FundingHistory: []intel.FundingRound{
				{Company: "QuantumSecure", Round: "Series A", Amount: amt("$10M"), Year: "2024"},
				{Company: "QuantumSecure", Round: "Seed", Amount: amt("$3M"), Year: "2023"},
				{Company: "QuantumLeap", Round: "Series B", Amount: amt("$15M"), Year: "2019"},
			},
			Reputation: intel.Reputation{
				Score:   9.1,
				Factors: []string{"World-class researcher", "Previous successful exit", "Cutting-edge technology"},
			},
		},
	}
}

func sampleDeals() []intel.VCDeal {
	return []intel.VCDeal{
		{
			ID: 1, StartupName: "FlexiPay", Industry: "FinTech", Stage: "Series A",
			RoundSize: amt("$12M"), LeadInvestor: "Sequoia Capital India",
			OtherInvestors: []string{"Accel Partners", "Blume Ventures"},
			Geography:      "India", Date: date("2024-01-15"), Valuation: amt("$50M"),
			Description:       "Digital payment solutions for small businesses in tier-2 cities",
			FounderBackground: "Ex-Paytm executives with 8+ years fintech experience",
			UseOfFunds:        []string{"Product development", "Market expansion", "Team scaling"},
			DealSource:        "TechCrunch", Confidence: intel.LevelHigh,
		},
		{
			ID: 2, StartupName: "GreenLogistics", Industry: "Logistics", Stage: "Seed",
			RoundSize: amt("$3.5M"), LeadInvestor: "Matrix Partners",
			OtherInvestors: []string{"Kalaari Capital", "Individual Angels"},
			Geography:      "Southeast Asia", Date: date("2024-01-12"), Valuation: amt("$15M"),
			Description:       "Sustainable last-mile delivery using electric vehicles",
			FounderBackground: "Former Grab and GoJek operations leaders",
			UseOfFunds:        []string{"Fleet expansion", "Technology platform", "Geographic expansion"},
			DealSource:        "VCCircle", Confidence: intel.LevelHigh,
		},
		{
			ID: 3, StartupName: "HealthAI", Industry: "HealthTech", Stage: "Series B",
			RoundSize: amt("$25M"), LeadInvestor: "General Catalyst",
			OtherInvestors: []string{"Bessemer Venture Partners", "Healthtech Capital"},
			Geography:      "North America", Date: date("2024-01-10"), Valuation: amt("$120M"),
			Description:       "AI-powered diagnostic tools for rural healthcare centers",
			FounderBackground: "Stanford PhD in AI, former Google Health researcher",
			UseOfFunds:        []string{"R&D", "Regulatory approvals", "International expansion"},
			DealSource:        "Crunchbase", Confidence: intel.LevelHigh,
		},
		{
			ID: 4, StartupName: "EduTech Pro", Industry: "EdTech", Stage: "Pre-Series A",
			RoundSize: amt("$8M"), LeadInvestor: "Lightspeed Venture Partners",
			OtherInvestors: []string{"GSV Ventures", "Owl Ventures"},
			Geography:      "Europe", Date: date("2024-01-08"), Valuation: amt("$35M"),
			Description:       "Personalized learning platform using adaptive AI",
			FounderBackground: "Former Coursera and Khan Academy product leaders",
			UseOfFunds:        []string{"Content development", "AI enhancement", "User acquisition"},
			DealSource:        "PitchBook", Confidence: intel.LevelMedium,
		},
		{
			ID: 5, StartupName: "CryptoSecure", Industry: "Blockchain", Stage: "Series A",
			RoundSize: amt("$15M"), LeadInvestor: "Andreessen Horowitz",
			OtherInvestors: []string{"Coinbase Ventures", "Pantera Capital"},
			Geography:      "North America", Date: date("2024-01-05"), Valuation: amt("$75M"),
			Description:       "Enterprise blockchain security and compliance platform",
			FounderBackground: "Ex-Coinbase security team, MIT cryptography PhD",
			UseOfFunds:        []string{"Security research", "Enterprise sales", "Compliance tools"},
			DealSource:        "The Block", Confidence: intel.LevelHigh,
		},
		{
			ID: 6, StartupName: "AgriDrone", Industry: "AgTech", Stage: "Seed",
			RoundSize: amt("$2.8M"), LeadInvestor: "Omnivore Partners",
			OtherInvestors: []string{"S2G Ventures", "AgFunder"},
			Geography:      "India", Date: date("2024-01-03"), Valuation: amt("$12M"),
			Description:       "Drone-based crop monitoring and precision agriculture",
			FounderBackground: "IIT alumni with aerospace and agriculture expertise",
			UseOfFunds:        []string{"Hardware development", "Pilot programs", "Regulatory compliance"},
			DealSource:        "AgFunder News", Confidence: intel.LevelMedium,
		},
		{
			ID: 7, StartupName: "CleanEnergy Solutions", Industry: "CleanTech", Stage: "Series A",
			RoundSize: amt("$18M"), LeadInvestor: "Breakthrough Energy Ventures",
			OtherInvestors: []string{"Energy Impact Partners", "Shell Ventures"},
			Geography:      "Europe", Date: date("2024-01-01"), Valuation: amt("$80M"),
			Description:       "Next-generation solar panel efficiency technology",
			FounderBackground: "Former Tesla energy division, Stanford materials science",
			UseOfFunds:        []string{"Manufacturing scale-up", "R&D", "Market penetration"},
			DealSource:        "GreenTech Media", Confidence: intel.LevelHigh,
		},
	}
}

func sampleSavedItems() []intel.SavedItem {
	return []intel.SavedItem{
		{
			ID: "signal-1", Name: "NeuroLink AI",
			Description: "Brain-computer interface for productivity enhancement",
			DateAdded:   date("2024-01-15"), LastUpdate: datePtr("2024-01-16"),
			UpdateType: "Funding raised $2M seed",
			Data:       intel.SignalSnapshot{NoveltyScore: 9, ActionTag: intel.ActionBuild, Industry: "AI/ML"},
		},
		{
			ID: "founder-1", Name: "Priya Sharma",
			Description: "CEO & Co-founder at NeuroLink AI",
			DateAdded:   date("2024-01-14"), LastUpdate: datePtr("2024-01-16"),
			UpdateType: "Published paper in Nature",
			Data:       intel.FounderSnapshot{Company: "NeuroLink AI", Reputation: 8.5},
		},
		{
			ID: "deal-1", Name: "FlexiPay Series A",
			Description: "$12M Series A led by Sequoia Capital India",
			DateAdded:   date("2024-01-13"),
			Data:        intel.DealSnapshot{RoundSize: amt("$12M"), Stage: "Series A", LeadInvestor: "Sequoia Capital India"},
		},
		{
			ID: "signal-2", Name: "CropSense",
			Description: "IoT sensors for precision agriculture",
			DateAdded:   date("2024-01-12"), LastUpdate: datePtr("2024-01-15"),
			UpdateType: "Government partnership signed",
			Data:       intel.SignalSnapshot{NoveltyScore: 7, ActionTag: intel.ActionScout, Industry: "AgTech"},
		},
		{
			ID: "founder-2", Name: "Dr. Sarah Chen",
			Description: "CEO at QuantumSecure",
			DateAdded:   date("2024-01-10"),
			Data:        intel.FounderSnapshot{Company: "QuantumSecure", Reputation: 9.1},
		},
	}
}

func sampleIdeas() []intel.RoutedIdea {
	return []intel.RoutedIdea{
		{
			ID: 1, Name: "NeuroLink AI", Description: "Brain-computer interface for productivity enhancement",
			Category: "AI/ML", OriginalAction: intel.ActionBuild, CurrentAction: intel.ActionBuild,
			Reasoning: "Exceptional novelty score (9/10), strong technical team with Neuralink background, low cloneability risk due to technical complexity",
			Scores:    intel.IdeaScores{Novelty: 9, Cloneability: 2, MarketFit: 6, BuildCost: 250000},
			Priority:  intel.LevelHigh, EstimatedEffort: "18-24 months",
			RiskFactors: []string{"Regulatory approval", "Technical complexity", "High capital requirements"},
		},
		{
			ID: 2, Name: "CropSense", Description: "IoT sensors for precision agriculture in emerging markets",
			Category: "AgTech", OriginalAction: intel.ActionScout, CurrentAction: intel.ActionBuild,
			Reasoning: "Strong India market fit (9/10), experienced team, government partnership potential",
			Scores:    intel.IdeaScores{Novelty: 7, Cloneability: 6, MarketFit: 9, BuildCost: 75000},
			AnalystOverride: &intel.AnalystOverride{
				NewAction: intel.ActionBuild,
				Comment:   "Government partnership confirmed, market timing is perfect",
				Analyst:   "Sarah Chen", Date: date("2024-01-15"),
			},
			Priority: intel.LevelHigh, EstimatedEffort: "12-15 months",
			RiskFactors: []string{"Market adoption", "Competition from established players"},
		},
		{
			ID: 3, Name: "QuantumSecure", Description: "Quantum-resistant encryption for financial institutions",
			Category: "FinTech", OriginalAction: intel.ActionStore, CurrentAction: intel.ActionStore,
			Reasoning: "Cutting-edge technology but market not ready, high build cost ($500K), regulatory uncertainty",
			Scores:    intel.IdeaScores{Novelty: 8, Cloneability: 1, MarketFit: 7, BuildCost: 500000},
			Priority:  intel.LevelMedium, EstimatedEffort: "24-36 months",
			RiskFactors: []string{"Market readiness", "Regulatory changes", "Technical talent scarcity"},
		},
		{
			ID: 4, Name: "MediChain", Description: "Blockchain-based medical records for rural healthcare",
			Category: "HealthTech", OriginalAction: intel.ActionBuild, CurrentAction: intel.ActionScout,
			Reasoning: "Good market fit but regulatory complexity requires more research",
			Scores:    intel.IdeaScores{Novelty: 6, Cloneability: 7, MarketFit: 8, BuildCost: 120000},
			AnalystOverride: &intel.AnalystOverride{
				NewAction: intel.ActionScout,
				Comment:   "Need to understand regulatory landscape better before committing",
				Analyst:   "Rajesh Kumar", Date: date("2024-01-14"),
			},
			Priority: intel.LevelMedium, EstimatedEffort: "15-18 months",
			RiskFactors: []string{"Regulatory compliance", "Data privacy concerns", "Healthcare adoption"},
		},
		{
			ID: 5, Name: "EcoLogistics", Description: "Carbon-neutral last-mile delivery optimization",
			Category: "Logistics", OriginalAction: intel.ActionScout, CurrentAction: intel.ActionScout,
			Reasoning: "Moderate novelty, high cloneability, but strong ESG alignment and operational efficiency potential",
			Scores:    intel.IdeaScores{Novelty: 5, Cloneability: 8, MarketFit: 7, BuildCost: 90000},
			Priority:  intel.LevelLow, EstimatedEffort: "10-12 months",
			RiskFactors: []string{"Competition", "Operational complexity", "Customer acquisition"},
		},
		{
			ID: 6, Name: "VoiceDoc", Description: "AI-powered voice diagnosis for telemedicine",
			Category: "HealthTech", OriginalAction: intel.ActionStore, CurrentAction: intel.ActionStore,
			Reasoning: "High regulatory hurdles, requires clinical trials, but significant long-term potential",
			Scores:    intel.IdeaScores{Novelty: 7, Cloneability: 4, MarketFit: 8, BuildCost: 180000},
			Priority:  intel.LevelLow, EstimatedEffort: "24-30 months",
			RiskFactors: []string{"FDA approval", "Clinical validation", "Medical liability"},
		},
	}
}

func sampleDigest() intel.DigestData {
	return intel.DigestData{
		TopIdeas: []intel.DigestIdea{
			{Name: "NeuroLink AI", Score: 9.2, Category: "AI/ML", Description: "Brain-computer interface for productivity enhancement", Reasoning: "Exceptional novelty score, strong technical team, low cloneability risk"},
			{Name: "QuantumSecure", Score: 8.8, Category: "FinTech", Description: "Quantum-resistant encryption for financial institutions", Reasoning: "Cutting-edge technology, high barriers to entry, growing market need"},
			{Name: "CropSense", Score: 8.5, Category: "AgTech", Description: "IoT sensors for precision agriculture in emerging markets", Reasoning: "Strong India market fit, experienced team, government support potential"},
			{Name: "MediChain", Score: 8.3, Category: "HealthTech", Description: "Blockchain-based medical records for rural healthcare", Reasoning: "Addresses critical healthcare gap, scalable solution, regulatory tailwinds"},
			{Name: "EcoLogistics", Score: 8.1, Category: "Logistics", Description: "Carbon-neutral last-mile delivery optimization", Reasoning: "ESG alignment, operational efficiency gains, experienced founding team"},
			{Name: "EduAI", Score: 7.9, Category: "EdTech", Description: "Personalized learning platform using adaptive AI", Reasoning: "Large addressable market, proven AI capabilities, strong user traction"},
			{Name: "SolarTech", Score: 7.7, Category: "CleanTech", Description: "Next-generation solar panel efficiency technology", Reasoning: "Breakthrough technology, climate impact, manufacturing scalability"},
			{Name: "DeFiSecure", Score: 7.5, Category: "Blockchain", Description: "Decentralized insurance platform", Reasoning: "Novel approach to insurance, strong tokenomics, regulatory clarity improving"},
			{Name: "RoboChef", Score: 7.3, Category: "Robotics", Description: "Automated cooking system for restaurants", Reasoning: "Labor shortage solution, consistent quality, high ROI for customers"},
			{Name: "VoiceDoc", Score: 7.1, Category: "HealthTech", Description: "AI-powered voice diagnosis for telemedicine", Reasoning: "Accessible healthcare solution, strong IP portfolio, clinical validation"},
		},
		EmergingTrends: []intel.EmergingTrend{
			{Trend: "AI-First Healthcare Solutions", Impact: intel.LevelHigh, Description: "Rapid adoption of AI in diagnostics, drug discovery, and patient care", Sectors: []string{"HealthTech", "AI/ML", "Biotech"}},
			{Trend: "Quantum Computing Commercialization", Impact: intel.LevelHigh, Description: "First wave of practical quantum applications in finance and cryptography", Sectors: []string{"FinTech", "Quantum", "Security"}},
			{Trend: "Climate Tech Acceleration", Impact: intel.LevelHigh, Description: "Massive funding influx into carbon capture, renewable energy, and sustainability", Sectors: []string{"CleanTech", "Energy", "Carbon"}},
			{Trend: "Decentralized Infrastructure", Impact: intel.LevelMedium, Description: "Growing adoption of blockchain-based infrastructure and governance models", Sectors: []string{"Blockchain", "Web3", "Infrastructure"}},
			{Trend: "Rural Tech Penetration", Impact: intel.LevelMedium, Description: "Technology solutions specifically designed for rural and underserved markets", Sectors: []string{"AgTech", "FinTech", "HealthTech"}},
		},
		SuggestedBuilds: []intel.SuggestedBuild{
			{Name: "NeuroLink AI", Priority: intel.LevelHigh, BuildCost: amt("$250K"), TimeToMarket: "18 months", Reasoning: "Exceptional team, clear technical roadmap, first-mover advantage opportunity"},
			{Name: "CropSense", Priority: intel.LevelHigh, BuildCost: amt("$75K"), TimeToMarket: "12 months", Reasoning: "Low build cost, strong market demand, government partnership potential"},
			{Name: "MediChain", Priority: intel.LevelMedium, BuildCost: amt("$120K"), TimeToMarket: "15 months", Reasoning: "Regulatory complexity but high social impact and scalability"},
			{Name: "EcoLogistics", Priority: intel.LevelMedium, BuildCost: amt("$90K"), TimeToMarket: "10 months", Reasoning: "Proven market need, operational efficiency focus, ESG alignment"},
			{Name: "VoiceDoc", Priority: intel.LevelLow, BuildCost: amt("$180K"), TimeToMarket: "24 months", Reasoning: "High regulatory hurdles but significant long-term potential"},
		},
		MarketInsights: []intel.MarketInsight{
			{Insight: "AI/ML sector showing 92% momentum with $2.3B in funding", Category: "Sector Analysis", Confidence: 95},
			{Insight: "GitHub signals increasing 15% week-over-week for developer tools", Category: "Signal Intelligence", Confidence: 88},
			{Insight: "India market fit scores trending upward across all categories", Category: "Geographic Trends", Confidence: 82},
			{Insight: "Quantum computing startups seeing increased VC interest", Category: "Emerging Tech", Confidence: 78},
		},
	}
}

func sampleSectors() []intel.SectorMomentum {
	return []intel.SectorMomentum{
		{Sector: "AI/ML", Momentum: 92, Change: 15, DealCount: 47, TotalFunding: amt("$2.3B")},
		{Sector: "FinTech", Momentum: 78, Change: -3, DealCount: 34, TotalFunding: amt("$1.8B")},
		{Sector: "HealthTech", Momentum: 85, Change: 8, DealCount: 28, TotalFunding: amt("$1.2B")},
		{Sector: "AgTech", Momentum: 65, Change: 12, DealCount: 19, TotalFunding: amt("$450M")},
		{Sector: "CleanTech", Momentum: 71, Change: 22, DealCount: 23, TotalFunding: amt("$890M")},
		{Sector: "EdTech", Momentum: 58, Change: -8, DealCount: 16, TotalFunding: amt("$320M")},
		{Sector: "Logistics", Momentum: 69, Change: 5, DealCount: 21, TotalFunding: amt("$670M")},
		{Sector: "Blockchain", Momentum: 54, Change: -12, DealCount: 14, TotalFunding: amt("$280M")},
	}
}

func sampleTopIdeas() []intel.TopIdea {
	return []intel.TopIdea{
		{ID: 1, Name: "NeuroLink AI", Category: "AI/ML", Score: 9.2, Description: "Brain-computer interface", Source: "GitHub"},
		{ID: 2, Name: "QuantumSecure", Category: "FinTech", Score: 8.8, Description: "Quantum-resistant encryption", Source: "Reddit"},
		{ID: 3, Name: "CropSense", Category: "AgTech", Score: 8.5, Description: "IoT precision agriculture", Source: "ProductHunt"},
		{ID: 4, Name: "MediChain", Category: "HealthTech", Score: 8.3, Description: "Blockchain medical records", Source: "Twitter"},
		{ID: 5, Name: "EcoLogistics", Category: "Logistics", Score: 8.1, Description: "Carbon-neutral delivery", Source: "GitHub"},
		{ID: 6, Name: "EduAI", Category: "EdTech", Score: 7.9, Description: "Personalized learning AI", Source: "ProductHunt"},
		{ID: 7, Name: "SolarTech", Category: "CleanTech", Score: 7.7, Description: "Next-gen solar panels", Source: "Reddit"},
		{ID: 8, Name: "DeFiSecure", Category: "Blockchain", Score: 7.5, Description: "Decentralized insurance", Source: "Twitter"},
	}
}

func sampleSources() []intel.SourceDistribution {
	return []intel.SourceDistribution{
		{Source: "GitHub", Count: 156, Percentage: 35, Velocity: 12.3},
		{Source: "ProductHunt", Count: 98, Percentage: 22, Velocity: 8.7},
		{Source: "Reddit", Count: 87, Percentage: 19, Velocity: 7.2},
		{Source: "Twitter", Count: 76, Percentage: 17, Velocity: 6.8},
		{Source: "HackerNews", Count: 31, Percentage: 7, Velocity: 2.1},
	}
}
