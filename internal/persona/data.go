package persona

// Built-in tables for the Wealth 360 dashboard. Order here is definition
// order for ListPersonas and AllSectionInsights.

const defaultPersonaID = "executive"

var builtinPersonas = []Persona{
	{
		ID:          "chief_investment_officer",
		Name:        "Chief Investment Officer (CIO)",
		Role:        "CIO",
		Description: "Strategic oversight of investment decisions and portfolio performance",
		Icon:        "chart_with_upwards_trend",
		Color:       "#1f4e79",
		FocusAreas:  []string{"Portfolio Performance", "Risk Management", "Asset Allocation", "Market Intelligence"},
	},
	{
		ID:          "relationship_manager",
		Name:        "Relationship Manager (RM)",
		Role:        "RM",
		Description: "Client relationship management and advisory services",
		Icon:        "handshake",
		Color:       "#2e7dd2",
		FocusAreas:  []string{"Client Engagement", "Churn Prevention", "Cross-sell Opportunities", "Life Event Triggers"},
	},
	{
		ID:          "compliance_officer",
		Name:        "Compliance Officer",
		Role:        "Compliance",
		Description: "Regulatory compliance and risk monitoring",
		Icon:        "shield",
		Color:       "#28a745",
		FocusAreas:  []string{"Suitability Alerts", "KYC/KYB Status", "Regulatory Breaches", "Audit Readiness"},
	},
	{
		ID:          "wealth_advisor",
		Name:        "Wealth Advisor",
		Role:        "Advisor",
		Description: "Direct client advisory and portfolio recommendations",
		Icon:        "user_tie",
		Color:       "#6f42c1",
		FocusAreas:  []string{"Client 360 View", "Next Best Actions", "Portfolio Optimization", "Client Briefings"},
	},
	{
		ID:          "operations_manager",
		Name:        "Operations Manager",
		Role:        "Operations",
		Description: "Operational efficiency and process optimization",
		Icon:        "cog",
		Color:       "#fd7e14",
		FocusAreas:  []string{"Transaction Anomalies", "Process Automation", "Advisor Productivity", "Cash Sweep Operations"},
	},
	{
		ID:          "executive",
		Name:        "C-Suite Executive",
		Role:        "Executive",
		Description: "Enterprise-wide strategic oversight and decision making",
		Icon:        "building",
		Color:       "#dc3545",
		FocusAreas:  []string{"AUM Growth", "Revenue Optimization", "Client Acquisition", "Market Position"},
	},
}

var builtinSections = []Section{
	{
		ID:    "home",
		Title: "Platform Home",
		Insights: map[string]SectionInsight{
			"chief_investment_officer": {
				PrimaryMetrics: []string{"Total AUM", "YTD Growth", "Portfolio Performance"},
				KeyInsights: []string{
					"Real-time AUM tracking across all portfolios",
					"AI-powered growth forecasting with Cortex",
					"Market positioning relative to benchmarks",
				},
				DataSources: []string{"ACCOUNTS", "ACCOUNT_HISTORY", "PORTFOLIOS"},
			},
			"relationship_manager": {
				PrimaryMetrics: []string{"Total Clients", "Engagement Score", "Churn Alerts"},
				KeyInsights: []string{
					"Client engagement trends and patterns",
					"Priority outreach recommendations",
					"Relationship health indicators",
				},
				DataSources: []string{"CLIENTS", "INTERACTIONS", "ADVISOR_CLIENT_RELATIONSHIPS"},
			},
			"compliance_officer": {
				PrimaryMetrics: []string{"Compliance Rate", "Open Alerts", "KYC Status"},
				KeyInsights: []string{
					"Suitability compliance dashboard",
					"Regulatory alert summary",
					"Audit trail accessibility",
				},
				DataSources: []string{"CLIENTS", "ACCOUNTS", "PORTFOLIOS"},
			},
			"wealth_advisor": {
				PrimaryMetrics: []string{"My Clients", "Pending Actions", "Revenue Impact"},
				KeyInsights: []string{
					"Personal book overview",
					"AI-recommended next actions",
					"Client meeting preparation",
				},
				DataSources: []string{"CLIENTS", "ADVISOR_CLIENT_RELATIONSHIPS", "INTERACTIONS"},
			},
			"operations_manager": {
				PrimaryMetrics: []string{"Active Advisors", "Process Efficiency", "Automation Rate"},
				KeyInsights: []string{
					"Advisor productivity metrics",
					"Workflow automation status",
					"Operational bottleneck identification",
				},
				DataSources: []string{"ADVISORS", "ADVISOR_CLIENT_RELATIONSHIPS", "TRANSACTIONS"},
			},
			"executive": {
				PrimaryMetrics: []string{"Total AUM", "Client Count", "Revenue", "Growth Rate"},
				KeyInsights: []string{
					"Enterprise-wide performance summary",
					"Strategic growth opportunities",
					"Competitive market positioning",
				},
				DataSources: []string{"ACCOUNTS", "CLIENTS", "PORTFOLIOS", "TRANSACTIONS"},
			},
		},
	},
	{
		ID:    "business_overview",
		Title: "Business Overview",
		Insights: map[string]SectionInsight{
			"chief_investment_officer": {
				PrimaryMetrics: []string{"Portfolio Drift", "Risk Exposure", "Asset Allocation"},
				KeyInsights: []string{
					"Investment strategy alignment analysis",
					"Risk-adjusted return optimization",
					"Sector and asset class performance",
				},
				DataSources: []string{"PORTFOLIOS", "POSITION_HISTORY"},
			},
			"relationship_manager": {
				PrimaryMetrics: []string{"Client Satisfaction", "Retention Rate", "NPS Score"},
				KeyInsights: []string{
					"Client sentiment trends from interactions",
					"At-risk client identification",
					"Engagement improvement opportunities",
				},
				DataSources: []string{"CLIENTS", "INTERACTIONS", "ADVISOR_CLIENT_RELATIONSHIPS"},
			},
			"compliance_officer": {
				PrimaryMetrics: []string{"Suitability Breaches", "Concentration Alerts", "KYC Expiry"},
				KeyInsights: []string{
					"Portfolio concentration risk monitoring",
					"Suitability mismatch detection",
					"Regulatory deadline tracking",
				},
				DataSources: []string{"CLIENTS", "PORTFOLIOS", "ACCOUNTS"},
			},
			"wealth_advisor": {
				PrimaryMetrics: []string{"Book Value", "Client Growth", "Revenue per Client"},
				KeyInsights: []string{
					"Personal performance benchmarking",
					"High-value client opportunities",
					"Cross-sell conversion tracking",
				},
				DataSources: []string{"ADVISOR_CLIENT_RELATIONSHIPS", "CLIENTS", "ACCOUNTS"},
			},
			"operations_manager": {
				PrimaryMetrics: []string{"Transaction Volume", "Processing Time", "Error Rate"},
				KeyInsights: []string{
					"Operational throughput analysis",
					"Process efficiency metrics",
					"Automation opportunity identification",
				},
				DataSources: []string{"TRANSACTIONS", "ACCOUNTS"},
			},
			"executive": {
				PrimaryMetrics: []string{"Revenue Growth", "Market Share", "Cost-to-Income"},
				KeyInsights: []string{
					"Enterprise financial performance",
					"Strategic initiative progress",
					"Competitive landscape analysis",
				},
				DataSources: []string{"ACCOUNTS", "CLIENTS", "TRANSACTIONS"},
			},
		},
	},
	{
		ID:    "ai_insights",
		Title: "AI-Powered Insights",
		Insights: map[string]SectionInsight{
			"chief_investment_officer": {
				PrimaryMetrics: []string{"AI Risk Score", "Prediction Accuracy", "Market Signals"},
				KeyInsights: []string{
					"Cortex-powered market forecasting",
					"AI-driven risk assessment",
					"Predictive portfolio optimization",
				},
				DataSources: []string{"PORTFOLIOS", "POSITION_HISTORY", "MARKET_EVENTS"},
			},
			"relationship_manager": {
				PrimaryMetrics: []string{"Churn Probability", "Next Best Action", "Sentiment Score"},
				KeyInsights: []string{
					"AI-predicted client churn risk",
					"Personalized engagement recommendations",
					"Sentiment analysis from interactions",
				},
				DataSources: []string{"CLIENTS", "INTERACTIONS", "ADVISOR_CLIENT_RELATIONSHIPS"},
			},
			"compliance_officer": {
				PrimaryMetrics: []string{"Risk Classification", "Anomaly Detection", "Compliance Score"},
				KeyInsights: []string{
					"AI_CLASSIFY for risk categorization",
					"Transaction anomaly detection",
					"Automated compliance monitoring",
				},
				DataSources: []string{"TRANSACTIONS", "CLIENTS", "ACCOUNTS"},
			},
			"wealth_advisor": {
				PrimaryMetrics: []string{"Client Briefing", "Talking Points", "Meeting Prep"},
				KeyInsights: []string{
					"AI-generated client narratives",
					"Automated meeting preparation",
					"Personalized conversation starters",
				},
				DataSources: []string{"CLIENTS", "PORTFOLIOS", "INTERACTIONS"},
			},
			"operations_manager": {
				PrimaryMetrics: []string{"Process Automation", "Efficiency Score", "Bottleneck ID"},
				KeyInsights: []string{
					"AI-identified process improvements",
					"Workflow optimization recommendations",
					"Resource allocation suggestions",
				},
				DataSources: []string{"ADVISORS", "TRANSACTIONS", "INTERACTIONS"},
			},
			"executive": {
				PrimaryMetrics: []string{"AI Confidence", "Forecast Accuracy", "Strategic Insights"},
				KeyInsights: []string{
					"AI-powered strategic recommendations",
					"Enterprise-wide predictive analytics",
					"Competitive intelligence synthesis",
				},
				DataSources: []string{"ACCOUNTS", "CLIENTS", "PORTFOLIOS", "MARKET_EVENTS"},
			},
		},
	},
	{
		ID:    "analytics_deep_dive",
		Title: "Analytics Deep Dive",
		Insights: map[string]SectionInsight{
			"chief_investment_officer": {
				PrimaryMetrics: []string{"Alpha Generation", "Sharpe Ratio", "Drawdown Analysis"},
				KeyInsights: []string{
					"Detailed portfolio attribution analysis",
					"Risk-adjusted performance metrics",
					"Factor exposure decomposition",
				},
				DataSources: []string{"PORTFOLIOS", "POSITION_HISTORY", "ACCOUNT_HISTORY"},
			},
			"relationship_manager": {
				PrimaryMetrics: []string{"Client Lifetime Value", "Engagement Depth", "Wallet Share"},
				KeyInsights: []string{
					"Client segmentation analytics",
					"Behavioral pattern analysis",
					"Revenue optimization by segment",
				},
				DataSources: []string{"CLIENTS", "ACCOUNTS", "TRANSACTIONS"},
			},
			"compliance_officer": {
				PrimaryMetrics: []string{"Breach History", "Resolution Time", "Risk Trending"},
				KeyInsights: []string{
					"Historical compliance analysis",
					"Risk pattern identification",
					"Remediation effectiveness tracking",
				},
				DataSources: []string{"CLIENTS", "PORTFOLIOS", "ACCOUNTS"},
			},
			"wealth_advisor": {
				PrimaryMetrics: []string{"Client Performance", "Goal Progress", "Rebalancing Needs"},
				KeyInsights: []string{
					"Individual client portfolio analysis",
					"Goal-based planning metrics",
					"Tax optimization opportunities",
				},
				DataSources: []string{"CLIENTS", "PORTFOLIOS", "POSITION_HISTORY"},
			},
			"operations_manager": {
				PrimaryMetrics: []string{"SLA Compliance", "Cost per Transaction", "Capacity Utilization"},
				KeyInsights: []string{
					"Operational cost analysis",
					"Service level monitoring",
					"Capacity planning insights",
				},
				DataSources: []string{"TRANSACTIONS", "ADVISORS", "ADVISOR_CLIENT_RELATIONSHIPS"},
			},
			"executive": {
				PrimaryMetrics: []string{"Segment Profitability", "Channel Efficiency", "Market Penetration"},
				KeyInsights: []string{
					"Segment-level P&L analysis",
					"Distribution channel performance",
					"Growth opportunity mapping",
				},
				DataSources: []string{"CLIENTS", "ACCOUNTS", "TRANSACTIONS", "ADVISORS"},
			},
		},
	},
	{
		ID:    "real_time_intelligence",
		Title: "Real-Time Intelligence",
		Insights: map[string]SectionInsight{
			"chief_investment_officer": {
				PrimaryMetrics: []string{"Live Market Data", "Position Changes", "Risk Alerts"},
				KeyInsights: []string{
					"Real-time portfolio monitoring",
					"Market event impact analysis",
					"Dynamic risk threshold alerts",
				},
				DataSources: []string{"PORTFOLIOS", "POSITION_HISTORY", "MARKET_EVENTS"},
			},
			"relationship_manager": {
				PrimaryMetrics: []string{"Live Interactions", "Client Activity", "Alert Queue"},
				KeyInsights: []string{
					"Real-time client engagement tracking",
					"Immediate outreach triggers",
					"Activity-based prioritization",
				},
				DataSources: []string{"INTERACTIONS", "CLIENTS", "ADVISOR_CLIENT_RELATIONSHIPS"},
			},
			"compliance_officer": {
				PrimaryMetrics: []string{"Active Breaches", "Real-time Alerts", "Escalation Status"},
				KeyInsights: []string{
					"Live compliance monitoring",
					"Immediate breach notification",
					"Real-time escalation tracking",
				},
				DataSources: []string{"TRANSACTIONS", "PORTFOLIOS", "CLIENTS"},
			},
			"wealth_advisor": {
				PrimaryMetrics: []string{"Client Alerts", "Market Updates", "Action Items"},
				KeyInsights: []string{
					"Client-specific event notifications",
					"Market-driven opportunity alerts",
					"Priority action queue",
				},
				DataSources: []string{"CLIENTS", "PORTFOLIOS", "MARKET_EVENTS"},
			},
			"operations_manager": {
				PrimaryMetrics: []string{"Transaction Queue", "Processing Status", "System Health"},
				KeyInsights: []string{
					"Real-time transaction monitoring",
					"System performance tracking",
					"Bottleneck identification",
				},
				DataSources: []string{"TRANSACTIONS", "ACCOUNTS"},
			},
			"executive": {
				PrimaryMetrics: []string{"Live AUM", "Active Users", "Critical Alerts"},
				KeyInsights: []string{
					"Enterprise dashboard overview",
					"Real-time business metrics",
					"Critical issue escalation",
				},
				DataSources: []string{"ACCOUNTS", "CLIENTS", "ADVISORS"},
			},
		},
	},
	{
		ID:    "advanced_capabilities",
		Title: "Advanced Capabilities",
		Insights: map[string]SectionInsight{
			"chief_investment_officer": {
				PrimaryMetrics: []string{"Climate Risk", "Geospatial AUM", "Predictive Models"},
				KeyInsights: []string{
					"ESG and climate risk analysis",
					"Geographic concentration risk",
					"ML-powered investment insights",
				},
				DataSources: []string{"CLIENTS", "PORTFOLIOS", "POSITION_HISTORY"},
			},
			"relationship_manager": {
				PrimaryMetrics: []string{"Geographic Coverage", "Regional Performance", "Local Events"},
				KeyInsights: []string{
					"Regional client distribution",
					"Local market opportunities",
					"Geographic engagement patterns",
				},
				DataSources: []string{"CLIENTS", "ADVISOR_CLIENT_RELATIONSHIPS"},
			},
			"compliance_officer": {
				PrimaryMetrics: []string{"Regional Compliance", "Jurisdiction Risk", "Cross-border"},
				KeyInsights: []string{
					"Multi-jurisdiction compliance",
					"Regional regulatory mapping",
					"Cross-border transaction monitoring",
				},
				DataSources: []string{"CLIENTS", "TRANSACTIONS", "ACCOUNTS"},
			},
			"wealth_advisor": {
				PrimaryMetrics: []string{"Client Locations", "Meeting Planning", "Travel Optimization"},
				KeyInsights: []string{
					"Client geographic clustering",
					"Meeting route optimization",
					"Regional client concentration",
				},
				DataSources: []string{"CLIENTS", "ADVISOR_CLIENT_RELATIONSHIPS"},
			},
			"operations_manager": {
				PrimaryMetrics: []string{"Branch Performance", "Regional Efficiency", "Resource Allocation"},
				KeyInsights: []string{
					"Branch-level analytics",
					"Regional resource optimization",
					"Capacity planning by location",
				},
				DataSources: []string{"ADVISORS", "CLIENTS", "TRANSACTIONS"},
			},
			"executive": {
				PrimaryMetrics: []string{"Market Expansion", "Regional P&L", "Growth Corridors"},
				KeyInsights: []string{
					"Geographic growth opportunities",
					"Regional profitability analysis",
					"Expansion strategy insights",
				},
				DataSources: []string{"CLIENTS", "ACCOUNTS", "ADVISORS"},
			},
		},
	},
}
