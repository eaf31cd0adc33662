package model

import (
	coursemodel "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/model"
)

type (
	CourseReq struct {
		Title           string  `json:"title" validate:"required"`
		Description     string  `json:"description" validate:"required"`
		EstimatedTime   *string `json:"estimatedTime"`
		MaterialsNeeded *string `json:"materialsNeeded"`
	}

	CourseRes struct {
		ID              int64    `json:"id"`
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		EstimatedTime   *string  `json:"estimatedTime"`
		MaterialsNeeded *string  `json:"materialsNeeded"`
		Owner           OwnerRes `json:"owner"`
	}
)

func (r CourseReq) Changes() coursemodel.Changes {
	return coursemodel.Changes{
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
	}
}

func NewCourseRes(c coursemodel.Course) CourseRes {
	return CourseRes{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		Owner:           NewOwnerRes(c.User),
	}
}

func NewCourseListRes(courses []coursemodel.Course) []CourseRes {
	out := make([]CourseRes, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseRes(c))
	}
	return out
}
