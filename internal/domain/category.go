package domain

// Category classifies a task.
type Category string

const (
	CategoryMeeting       Category = "Meeting"
	CategoryReview        Category = "Review"
	CategoryMarketing     Category = "Marketing"
	CategoryDesignProject Category = "Design project"
)

// CategoryOptions returns the recognised categories and their default.
func CategoryOptions() Options[Category] {
	return Options[Category]{
		Name:    "category",
		Values:  []Category{CategoryMeeting, CategoryReview, CategoryMarketing, CategoryDesignProject},
		Default: CategoryMeeting,
	}
}

// ParseCategory resolves a category name, defaulting on empty input.
func ParseCategory(s string) (Category, error) {
	return CategoryOptions().Parse(s)
}

// IsValid reports whether c is a recognised category.
func (c Category) IsValid() bool {
	return CategoryOptions().Contains(c)
}

// OrDefault returns c, or the default category when c is unset.
func (c Category) OrDefault() Category {
	if c == "" {
		return CategoryOptions().Default
	}
	return c
}

// Priority ranks a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
	PriorityNone   Priority = "None"
)

// PriorityOptions returns the recognised priorities and their default.
func PriorityOptions() Options[Priority] {
	return Options[Priority]{
		Name:    "priority",
		Values:  []Priority{PriorityHigh, PriorityMedium, PriorityLow, PriorityNone},
		Default: PriorityHigh,
	}
}

// ParsePriority resolves a priority name, defaulting on empty input.
func ParsePriority(s string) (Priority, error) {
	return PriorityOptions().Parse(s)
}

// IsValid reports whether p is a recognised priority.
func (p Priority) IsValid() bool {
	return PriorityOptions().Contains(p)
}

// OrDefault returns p, or the default priority when p is unset.
func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityOptions().Default
	}
	return p
}
