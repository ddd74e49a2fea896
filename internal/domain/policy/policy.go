// Package policy centralizes the role-based permission rules for booking-like
// entities in one declarative table, instead of duplicating role checks in
// every handler.
package policy

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

type Entity string

const (
	EntityAppointment Entity = "appointment"
	EntityExam        Entity = "exam"
	EntityExamResult  Entity = "exam_result"
)

type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpCancel Operation = "cancel"
)

// Ownership carries the foreign keys of the record being checked.
type Ownership struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
}

// predicate decides whether caller may perform the operation on a record
// with the given ownership.
type predicate func(caller uuid.UUID, own Ownership) bool

func anyRecord(uuid.UUID, Ownership) bool { return true }

func ownPatient(caller uuid.UUID, own Ownership) bool { return own.PatientID == caller }

func ownDoctor(caller uuid.UUID, own Ownership) bool { return own.DoctorID == caller }

func never(uuid.UUID, Ownership) bool { return false }

// table maps role x entity x operation to an access predicate. Missing cells
// deny. Read, update and cancel share one visibility rule per role; the
// original system skipped the doctor-ownership check on appointment cancel,
// which is resolved here by applying the same rule everywhere.
var table = map[entity.Role]map[Entity]map[Operation]predicate{
	entity.RoleAdmin: {
		EntityAppointment: {OpCreate: anyRecord, OpRead: anyRecord, OpUpdate: anyRecord, OpCancel: anyRecord},
		EntityExam:        {OpCreate: anyRecord, OpRead: anyRecord, OpUpdate: anyRecord, OpCancel: anyRecord},
		EntityExamResult:  {OpCreate: anyRecord, OpRead: anyRecord},
	},
	entity.RoleAtendente: {
		EntityAppointment: {OpCreate: anyRecord, OpRead: anyRecord, OpUpdate: anyRecord, OpCancel: anyRecord},
		EntityExam:        {OpCreate: anyRecord, OpRead: anyRecord, OpUpdate: anyRecord, OpCancel: anyRecord},
		EntityExamResult:  {OpCreate: never, OpRead: anyRecord},
	},
	entity.RoleMedico: {
		EntityAppointment: {OpCreate: anyRecord, OpRead: ownDoctor, OpUpdate: ownDoctor, OpCancel: ownDoctor},
		EntityExam:        {OpCreate: anyRecord, OpRead: ownDoctor, OpUpdate: ownDoctor, OpCancel: ownDoctor},
		EntityExamResult:  {OpCreate: anyRecord, OpRead: ownDoctor},
	},
	entity.RolePaciente: {
		EntityAppointment: {OpCreate: ownPatient, OpRead: ownPatient, OpUpdate: ownPatient, OpCancel: ownPatient},
		EntityExam:        {OpCreate: ownPatient, OpRead: ownPatient, OpUpdate: ownPatient, OpCancel: ownPatient},
		EntityExamResult:  {OpCreate: never, OpRead: ownPatient},
	},
}

// Allows consults the table once per request.
func Allows(role entity.Role, e Entity, op Operation, caller uuid.UUID, own Ownership) bool {
	ops, ok := table[role][e]
	if !ok {
		return false
	}
	pred, ok := ops[op]
	if !ok {
		return false
	}
	return pred(caller, own)
}

// ListScope narrows list queries to what the caller may see. Nil fields mean
// unrestricted.
type ListScope struct {
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
}

// ScopeFor returns the list filter for a role: patients see only their own
// records, doctors only theirs, admins and attendants everything.
func ScopeFor(role entity.Role, caller uuid.UUID) ListScope {
	switch role {
	case entity.RolePaciente:
		return ListScope{PatientID: &caller}
	case entity.RoleMedico:
		return ListScope{DoctorID: &caller}
	default:
		return ListScope{}
	}
}
