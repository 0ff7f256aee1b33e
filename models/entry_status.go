package models

type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "pending"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusRejected EntryStatus = "rejected"
)

var statusHumanName = map[EntryStatus]string{
	EntryStatusPending:  "Pending",
	EntryStatusApproved: "Approved",
	EntryStatusRejected: "Rejected",
}

func (s EntryStatus) ToHuman() string {
	if human, exist := statusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal: approved and rejected entries never change status again.
func (s EntryStatus) IsTerminal() bool {
	return s == EntryStatusApproved || s == EntryStatusRejected
}

func (s EntryStatus) IsAllowChange(next EntryStatus) bool {
	if s != EntryStatusPending {
		return false
	}
	return next == EntryStatusApproved || next == EntryStatusRejected
}

const DefaultRejectionReason = "No reason provided"

const DefaultProjectName = "No Project"
