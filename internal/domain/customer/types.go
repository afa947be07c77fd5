package customer

type ServicePlan string

const (
	PlanMonthly   ServicePlan = "monthly"
	PlanQuarterly ServicePlan = "quarterly"
	PlanOneTime   ServicePlan = "one_time"
)

func (p ServicePlan) String() string {
	return string(p)
}

func (p ServicePlan) IsValid() bool {
	switch p {
	case PlanMonthly, PlanQuarterly, PlanOneTime:
		return true
	default:
		return false
	}
}

func NewServicePlan(s string) (ServicePlan, error) {
	plan := ServicePlan(s)
	if !plan.IsValid() {
		return "", ErrInvalidServicePlan
	}
	return plan, nil
}
