package catalog

import (
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
)

// Built-in mock-test templates. The full JEE pattern is 90 questions, 30
// per subject; the mini template exists for shorter timed drills.
var mockTemplates = map[string]model.MockTemplate{
	"jee_main_full": {
		ID:    "jee_main_full",
		Name:  "JEE Main Full Mock",
		Total: 90,
		Sections: []model.MockSection{
			{Subject: model.SubjectPhysics, Count: 30},
			{Subject: model.SubjectChemistry, Count: 30},
			{Subject: model.SubjectMathematics, Count: 30},
		},
	},
	"jee_main_mini": {
		ID:    "jee_main_mini",
		Name:  "JEE Main Mini Mock",
		Total: 30,
		Sections: []model.MockSection{
			{Subject: model.SubjectPhysics, Count: 10},
			{Subject: model.SubjectChemistry, Count: 10},
			{Subject: model.SubjectMathematics, Count: 10},
		},
	},
}

// Template returns a mock-test template by id.
func Template(id string) (model.MockTemplate, error) {
	t, ok := mockTemplates[id]
	if !ok {
		return model.MockTemplate{}, errs.E(errs.NotFound, "TEMPLATE_NOT_FOUND", "mock template "+id+" not found")
	}
	return t, nil
}

// Templates lists the available mock templates in stable id order.
func Templates() []model.MockTemplate {
	out := []model.MockTemplate{
		mockTemplates["jee_main_full"],
		mockTemplates["jee_main_mini"],
	}
	return out
}
