package policy

import (
	"testing"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAllows(t *testing.T) {
	caller := uuid.New()
	other := uuid.New()

	ownRecord := Ownership{PatientID: caller, DoctorID: other}
	doctorRecord := Ownership{PatientID: other, DoctorID: caller}
	foreignRecord := Ownership{PatientID: other, DoctorID: other}

	tests := []struct {
		name string
		role entity.Role
		e    Entity
		op   Operation
		own  Ownership
		want bool
	}{
		{"admin reads any appointment", entity.RoleAdmin, EntityAppointment, OpRead, foreignRecord, true},
		{"admin cancels any exam", entity.RoleAdmin, EntityExam, OpCancel, foreignRecord, true},
		{"admin creates exam result", entity.RoleAdmin, EntityExamResult, OpCreate, foreignRecord, true},

		{"attendant updates any appointment", entity.RoleAtendente, EntityAppointment, OpUpdate, foreignRecord, true},
		{"attendant cannot create exam result", entity.RoleAtendente, EntityExamResult, OpCreate, foreignRecord, false},
		{"attendant reads any exam result", entity.RoleAtendente, EntityExamResult, OpRead, foreignRecord, true},

		{"doctor creates booking for anyone", entity.RoleMedico, EntityAppointment, OpCreate, foreignRecord, true},
		{"doctor reads own appointment", entity.RoleMedico, EntityAppointment, OpRead, doctorRecord, true},
		{"doctor cannot read other doctor's appointment", entity.RoleMedico, EntityAppointment, OpRead, foreignRecord, false},
		{"doctor cancels own exam", entity.RoleMedico, EntityExam, OpCancel, doctorRecord, true},
		{"doctor cannot cancel other doctor's appointment", entity.RoleMedico, EntityAppointment, OpCancel, foreignRecord, false},
		{"doctor creates exam result", entity.RoleMedico, EntityExamResult, OpCreate, foreignRecord, true},

		{"patient books own appointment", entity.RolePaciente, EntityAppointment, OpCreate, ownRecord, true},
		{"patient cannot book for someone else", entity.RolePaciente, EntityAppointment, OpCreate, foreignRecord, false},
		{"patient reads own exam", entity.RolePaciente, EntityExam, OpRead, ownRecord, true},
		{"patient cannot read foreign exam", entity.RolePaciente, EntityExam, OpRead, foreignRecord, false},
		{"patient cancels own appointment", entity.RolePaciente, EntityAppointment, OpCancel, ownRecord, true},
		{"patient cannot create exam result even for self", entity.RolePaciente, EntityExamResult, OpCreate, ownRecord, false},
		{"patient reads own exam result", entity.RolePaciente, EntityExamResult, OpRead, ownRecord, true},

		{"unknown role denied", entity.Role("INTRUDER"), EntityAppointment, OpRead, ownRecord, false},
		{"missing operation denied", entity.RoleAdmin, EntityExamResult, OpCancel, foreignRecord, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allows(tt.role, tt.e, tt.op, caller, tt.own))
		})
	}
}

func TestCancelUsesSameRuleAsReadAndUpdate(t *testing.T) {
	caller := uuid.New()
	other := uuid.New()

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleAtendente, entity.RoleMedico, entity.RolePaciente} {
		for _, e := range []Entity{EntityAppointment, EntityExam} {
			for _, own := range []Ownership{
				{PatientID: caller, DoctorID: other},
				{PatientID: other, DoctorID: caller},
				{PatientID: other, DoctorID: other},
			} {
				read := Allows(role, e, OpRead, caller, own)
				update := Allows(role, e, OpUpdate, caller, own)
				cancel := Allows(role, e, OpCancel, caller, own)
				assert.Equal(t, read, cancel, "role=%s entity=%s", role, e)
				assert.Equal(t, update, cancel, "role=%s entity=%s", role, e)
			}
		}
	}
}

func TestScopeFor(t *testing.T) {
	caller := uuid.New()

	patientScope := ScopeFor(entity.RolePaciente, caller)
	assert.NotNil(t, patientScope.PatientID)
	assert.Equal(t, caller, *patientScope.PatientID)
	assert.Nil(t, patientScope.DoctorID)

	doctorScope := ScopeFor(entity.RoleMedico, caller)
	assert.NotNil(t, doctorScope.DoctorID)
	assert.Equal(t, caller, *doctorScope.DoctorID)
	assert.Nil(t, doctorScope.PatientID)

	adminScope := ScopeFor(entity.RoleAdmin, caller)
	assert.Nil(t, adminScope.PatientID)
	assert.Nil(t, adminScope.DoctorID)

	attendantScope := ScopeFor(entity.RoleAtendente, caller)
	assert.Nil(t, attendantScope.PatientID)
	assert.Nil(t, attendantScope.DoctorID)
}
