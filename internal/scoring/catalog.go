package scoring

// Pillar is the display name of one of the six assessment sections.
type Pillar string

const (
	PillarGoToMarket          Pillar = "Go to Market"
	PillarPerformanceMetrics  Pillar = "Performance Metrics"
	PillarCommercialEssential Pillar = "Commercial Essentials"
	PillarOptimalProcesses    Pillar = "Optimal Processes"
	PillarPeopleCulture       Pillar = "People, Structure & Culture"
	PillarSystemsTools        Pillar = "Systems & Tools"
)

// Category is one of the three capability roll-ups a question can feed.
type Category string

const (
	CategoryProfitable Category = "Profitable"
	CategoryRepeatable Category = "Repeatable"
	CategoryScalable   Category = "Scalable"
)

// Question is one catalog entry. Pillar membership is mandatory; the
// category is empty for questions that intentionally feed no capability
// roll-up. The pillar and category registries are derived from this catalog
// so a question id can never drift between tables.
type Question struct {
	ID       string
	Pillar   Pillar
	Category Category
}

// stepKeys are the section identifiers the form layer uses for each pillar.
var stepKeys = map[Pillar]string{
	PillarGoToMarket:          "base-camp",
	PillarPerformanceMetrics:  "tracking-climb",
	PillarCommercialEssential: "scaling-essentials",
	PillarOptimalProcesses:    "streamlining-climb",
	PillarPeopleCulture:       "assembling-team",
	PillarSystemsTools:        "toolbox-success",
}

// StepKey returns the form section key for the pillar.
func (p Pillar) StepKey() string {
	return stepKeys[p]
}

var pillarOrder = []Pillar{
	PillarGoToMarket,
	PillarPerformanceMetrics,
	PillarCommercialEssential,
	PillarOptimalProcesses,
	PillarPeopleCulture,
	PillarSystemsTools,
}

var categoryOrder = []Category{
	CategoryProfitable,
	CategoryRepeatable,
	CategoryScalable,
}

// Pillars returns the six pillars in display order.
func Pillars() []Pillar {
	out := make([]Pillar, len(pillarOrder))
	copy(out, pillarOrder)
	return out
}

// Categories returns the three capability categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

var catalog = []Question{
	// Go to Market
	{ID: "target-niche", Pillar: PillarGoToMarket, Category: CategoryProfitable},
	{ID: "pinpoint-clients", Pillar: PillarGoToMarket, Category: CategoryProfitable},
	{ID: "targeted-pipeline", Pillar: PillarGoToMarket, Category: CategoryRepeatable},
	{ID: "know-buyers", Pillar: PillarGoToMarket, Category: CategoryProfitable},
	{ID: "clear-problems", Pillar: PillarGoToMarket, Category: CategoryProfitable},
	{ID: "proven-approach", Pillar: PillarGoToMarket, Category: CategoryProfitable},
	{ID: "partners-resellers", Pillar: PillarGoToMarket, Category: CategoryScalable},
	{ID: "account-management", Pillar: PillarGoToMarket, Category: CategoryScalable},
	{ID: "global-growth", Pillar: PillarGoToMarket, Category: CategoryScalable},
	{ID: "know-competitors", Pillar: PillarGoToMarket, Category: CategoryProfitable},
	// Performance Metrics
	{ID: "commercial-performance", Pillar: PillarPerformanceMetrics, Category: CategoryProfitable},
	{ID: "revenue-profit-targets", Pillar: PillarPerformanceMetrics, Category: CategoryProfitable},
	{ID: "pipeline-management", Pillar: PillarPerformanceMetrics, Category: CategoryProfitable},
	{ID: "great-sale-recognition", Pillar: PillarPerformanceMetrics, Category: CategoryProfitable},
	{ID: "three-year-targets", Pillar: PillarPerformanceMetrics, Category: CategoryRepeatable},
	{ID: "kpis-metrics", Pillar: PillarPerformanceMetrics, Category: CategoryRepeatable},
	// Commercial Essentials
	{ID: "objections-techniques", Pillar: PillarCommercialEssential, Category: CategoryProfitable},
	{ID: "commercial-model", Pillar: PillarCommercialEssential, Category: CategoryScalable},
	{ID: "pricing-testing", Pillar: PillarCommercialEssential, Category: CategoryRepeatable},
	{ID: "terms-conditions", Pillar: PillarCommercialEssential, Category: CategoryScalable},
	// Optimal Processes
	{ID: "outbound-sales-approach", Pillar: PillarOptimalProcesses, Category: CategoryRepeatable},
	{ID: "marketing-brand-awareness", Pillar: PillarOptimalProcesses, Category: CategoryRepeatable},
	{ID: "lead-qualification", Pillar: PillarOptimalProcesses, Category: CategoryRepeatable},
	{ID: "delivery-handoff", Pillar: PillarOptimalProcesses, Category: CategoryScalable},
	// People, Structure & Culture
	{ID: "team-structure", Pillar: PillarPeopleCulture, Category: CategoryRepeatable},
	{ID: "right-people-roles", Pillar: PillarPeopleCulture, Category: CategoryRepeatable},
	{ID: "compensation-plans", Pillar: PillarPeopleCulture, Category: CategoryProfitable},
	{ID: "sales-culture", Pillar: PillarPeopleCulture, Category: CategoryScalable},
	{ID: "performance-management", Pillar: PillarPeopleCulture, Category: CategoryScalable},
	// Systems & Tools
	{ID: "central-shared-drive", Pillar: PillarSystemsTools, Category: CategoryScalable},
	{ID: "client-collateral", Pillar: PillarSystemsTools, Category: CategoryProfitable},
	{ID: "capability-demonstration", Pillar: PillarSystemsTools, Category: CategoryRepeatable},
	{ID: "digital-tools", Pillar: PillarSystemsTools, Category: CategoryScalable},
	{ID: "crm-implementation", Pillar: PillarSystemsTools, Category: CategoryScalable},
}

var (
	questionsByPillar  map[Pillar][]string
	categoryByQuestion map[string]Category
)

func init() {
	questionsByPillar = make(map[Pillar][]string, len(pillarOrder))
	categoryByQuestion = make(map[string]Category, len(catalog))
	for _, q := range catalog {
		questionsByPillar[q.Pillar] = append(questionsByPillar[q.Pillar], q.ID)
		if q.Category != "" {
			categoryByQuestion[q.ID] = q.Category
		}
	}
}

// Catalog returns a copy of the full question catalog.
func Catalog() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// PillarQuestions returns the question ids belonging to a pillar, in
// catalog order.
func PillarQuestions(p Pillar) []string {
	ids := questionsByPillar[p]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// QuestionCategory resolves a question id to its capability category.
// Questions outside the category registry return false.
func QuestionCategory(id string) (Category, bool) {
	c, ok := categoryByQuestion[id]
	return c, ok
}
