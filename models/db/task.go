package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

type Task struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Hour  string `json:"hour"`
	Color string `json:"color"`
}

type TaskList []Task

func (j TaskList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *TaskList) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
