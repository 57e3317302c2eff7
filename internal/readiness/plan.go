package readiness

// Canned preparation plans keyed by days until competition.
var actionPlans = map[int][]string{
	3: {
		"Day 1: Review your Engineering Notebook and add missing test data",
		"Day 2: Practice one 10-minute mock interview",
		"Day 3: Final team review and cheat sheet creation",
	},
	7: {
		"Day 1-2: Complete Engineering Notebook with all test results and iterations",
		"Day 3-4: Practice 3 mock interviews focusing on weak areas",
		"Day 5: Quantify outreach impact and gather evidence",
		"Day 6: Full 15-minute team mock interview",
		"Day 7: Create team cheat sheet and final review",
	},
	14: {
		"Week 1 - Days 1-3: Document all design iterations and test data in notebook",
		"Week 1 - Days 4-5: Gather outreach evidence (photos, numbers, testimonials)",
		"Week 1 - Day 6: First team mock interview (identify gaps)",
		"Week 1 - Day 7: Fill identified gaps in documentation",
		"Week 2 - Days 8-10: Practice 5 mock interviews (different awards)",
		"Week 2 - Day 11: Prepare specific examples for all categories",
		"Week 2 - Day 12: Final full-length mock interview",
		"Week 2 - Days 13-14: Create cheat sheet, review common mistakes",
	},
}

// ActionPlan returns the canned plan for the given day count; unrecognized
// day counts fall back to the 7-day plan.
// TODO: plan content ignores the readiness percentage; product has not
// decided whether low scorers should get a different plan.
func ActionPlan(percentage, days int) []string {
	_ = percentage
	if plan, ok := actionPlans[days]; ok {
		return plan
	}
	return actionPlans[7]
}
