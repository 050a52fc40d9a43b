package dto

import (
	"strings"

	"schooladmin_backend/internals/features/notices/model"
	helper "schooladmin_backend/internals/helpers"
)

/* =========================================================
 * NOTICE TYPE
 * ========================================================= */

type CreateNoticeTypeRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func (r *CreateNoticeTypeRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *CreateNoticeTypeRequest) ToModel() *model.NoticeTypeModel {
	return &model.NoticeTypeModel{Name: r.Name}
}

type UpdateNoticeTypeRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateNoticeTypeRequest) Normalize() { trimPtr(r.Name) }

func (r *UpdateNoticeTypeRequest) ApplyTo(m *model.NoticeTypeModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
}

/* =========================================================
 * NOTICE
 * ========================================================= */

type CreateNoticeRequest struct {
	BranchID     uint   `json:"branch_id" validate:"required,min=1"`
	NoticeTypeID uint   `json:"notice_type_id" validate:"required,min=1"`
	Title        string `json:"title" validate:"required,min=3,max=200"`
	Description  string `json:"description" validate:"omitempty,max=5000"`
	PublishDate  string `json:"publish_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateNoticeRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateNoticeRequest) DefaultBranch(branchID uint) {
	if r.BranchID == 0 {
		r.BranchID = branchID
	}
}

func (r *CreateNoticeRequest) ToModel() *model.NoticeModel {
	return &model.NoticeModel{
		BranchID:     r.BranchID,
		NoticeTypeID: r.NoticeTypeID,
		Title:        r.Title,
		Description:  r.Description,
		PublishDate:  helper.DateOrZero(r.PublishDate),
	}
}

type UpdateNoticeRequest struct {
	BranchID     *uint   `json:"branch_id" validate:"omitempty,min=1"`
	NoticeTypeID *uint   `json:"notice_type_id" validate:"omitempty,min=1"`
	Title        *string `json:"title" validate:"omitempty,min=3,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	PublishDate  *string `json:"publish_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateNoticeRequest) Normalize() {
	trimPtr(r.Title)
	trimPtr(r.Description)
}

func (r *UpdateNoticeRequest) ApplyTo(m *model.NoticeModel) {
	if r.BranchID != nil {
		m.BranchID = *r.BranchID
	}
	if r.NoticeTypeID != nil {
		m.NoticeTypeID = *r.NoticeTypeID
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.PublishDate != nil {
		m.PublishDate = helper.DateOrZero(*r.PublishDate)
	}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
