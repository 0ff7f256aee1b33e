package dbmodels

import (
	goalapimodels "timetracker-backend/models/api/goal"
)

type Project struct {
	BaseModel
	Name        string   `gorm:"type:varchar(255)"`
	Description string   `gorm:"type:varchar(1000)"`
	Tasks       TaskList `gorm:"type:jsonb"`
	UserID      string   `gorm:"type:varchar(36);index"`
}

func (r Project) ToModel() goalapimodels.ProjectView {
	view := goalapimodels.ProjectView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
	view.Tasks = make([]goalapimodels.TaskView, 0, len(r.Tasks))
	for _, task := range r.Tasks {
		view.Tasks = append(view.Tasks, goalapimodels.TaskView{
			ID:    task.ID,
			Name:  task.Name,
			Hour:  task.Hour,
			Color: task.Color,
		})
	}
	return view
}
