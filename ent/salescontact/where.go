// Code generated by ent, DO NOT EDIT.

package salescontact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kizunaworks/backoffice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldUserID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldDate, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldOccurredAt, v))
}

// ManagerName applies equality check predicate on the "manager_name" field. It's identical to ManagerNameEQ.
func ManagerName(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldManagerName, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldCompanyName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldPhone, v))
}

// ContactMethod applies equality check predicate on the "contact_method" field. It's identical to ContactMethodEQ.
func ContactMethod(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldContactMethod, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldStatus, v))
}

// ExternalCallID applies equality check predicate on the "external_call_id" field. It's identical to ExternalCallIDEQ.
func ExternalCallID(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldExternalCallID, v))
}

// ExternalSource applies equality check predicate on the "external_source" field. It's identical to ExternalSourceEQ.
func ExternalSource(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldExternalSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldUserID, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContainsFold(FieldDate, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldOccurredAt, v))
}

// ManagerNameEQ applies the EQ predicate on the "manager_name" field.
func ManagerNameEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldManagerName, v))
}

// ManagerNameNEQ applies the NEQ predicate on the "manager_name" field.
func ManagerNameNEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldManagerName, v))
}

// ManagerNameIn applies the In predicate on the "manager_name" field.
func ManagerNameIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldManagerName, vs...))
}

// ManagerNameNotIn applies the NotIn predicate on the "manager_name" field.
func ManagerNameNotIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldManagerName, vs...))
}

// ManagerNameGT applies the GT predicate on the "manager_name" field.
func ManagerNameGT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldManagerName, v))
}

// ManagerNameGTE applies the GTE predicate on the "manager_name" field.
func ManagerNameGTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldManagerName, v))
}

// ManagerNameLT applies the LT predicate on the "manager_name" field.
func ManagerNameLT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldManagerName, v))
}

// ManagerNameLTE applies the LTE predicate on the "manager_name" field.
func ManagerNameLTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldManagerName, v))
}

// ManagerNameContains applies the Contains predicate on the "manager_name" field.
func ManagerNameContains(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContains(FieldManagerName, v))
}

// ManagerNameHasPrefix applies the HasPrefix predicate on the "manager_name" field.
func ManagerNameHasPrefix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasPrefix(FieldManagerName, v))
}

// ManagerNameHasSuffix applies the HasSuffix predicate on the "manager_name" field.
func ManagerNameHasSuffix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasSuffix(FieldManagerName, v))
}

// ManagerNameEqualFold applies the EqualFold predicate on the "manager_name" field.
func ManagerNameEqualFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEqualFold(FieldManagerName, v))
}

// ManagerNameContainsFold applies the ContainsFold predicate on the "manager_name" field.
func ManagerNameContainsFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContainsFold(FieldManagerName, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameIsNil applies the IsNil predicate on the "company_name" field.
func CompanyNameIsNil() predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIsNull(FieldCompanyName))
}

// CompanyNameNotNil applies the NotNil predicate on the "company_name" field.
func CompanyNameNotNil() predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotNull(FieldCompanyName))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContainsFold(FieldCompanyName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContainsFold(FieldPhone, v))
}

// ContactMethodEQ applies the EQ predicate on the "contact_method" field.
func ContactMethodEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldContactMethod, v))
}

// ContactMethodNEQ applies the NEQ predicate on the "contact_method" field.
func ContactMethodNEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldContactMethod, v))
}

// ContactMethodIn applies the In predicate on the "contact_method" field.
func ContactMethodIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldContactMethod, vs...))
}

// ContactMethodNotIn applies the NotIn predicate on the "contact_method" field.
func ContactMethodNotIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldContactMethod, vs...))
}

// ContactMethodGT applies the GT predicate on the "contact_method" field.
func ContactMethodGT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldContactMethod, v))
}

// ContactMethodGTE applies the GTE predicate on the "contact_method" field.
func ContactMethodGTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldContactMethod, v))
}

// ContactMethodLT applies the LT predicate on the "contact_method" field.
func ContactMethodLT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldContactMethod, v))
}

// ContactMethodLTE applies the LTE predicate on the "contact_method" field.
func ContactMethodLTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldContactMethod, v))
}

// ContactMethodContains applies the Contains predicate on the "contact_method" field.
func ContactMethodContains(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContains(FieldContactMethod, v))
}

// ContactMethodHasPrefix applies the HasPrefix predicate on the "contact_method" field.
func ContactMethodHasPrefix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasPrefix(FieldContactMethod, v))
}

// ContactMethodHasSuffix applies the HasSuffix predicate on the "contact_method" field.
func ContactMethodHasSuffix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasSuffix(FieldContactMethod, v))
}

// ContactMethodEqualFold applies the EqualFold predicate on the "contact_method" field.
func ContactMethodEqualFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEqualFold(FieldContactMethod, v))
}

// ContactMethodContainsFold applies the ContainsFold predicate on the "contact_method" field.
func ContactMethodContainsFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContainsFold(FieldContactMethod, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContainsFold(FieldStatus, v))
}

// ExternalCallIDEQ applies the EQ predicate on the "external_call_id" field.
func ExternalCallIDEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldExternalCallID, v))
}

// ExternalCallIDNEQ applies the NEQ predicate on the "external_call_id" field.
func ExternalCallIDNEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldExternalCallID, v))
}

// ExternalCallIDIn applies the In predicate on the "external_call_id" field.
func ExternalCallIDIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldExternalCallID, vs...))
}

// ExternalCallIDNotIn applies the NotIn predicate on the "external_call_id" field.
func ExternalCallIDNotIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldExternalCallID, vs...))
}

// ExternalCallIDGT applies the GT predicate on the "external_call_id" field.
func ExternalCallIDGT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldExternalCallID, v))
}

// ExternalCallIDGTE applies the GTE predicate on the "external_call_id" field.
func ExternalCallIDGTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldExternalCallID, v))
}

// ExternalCallIDLT applies the LT predicate on the "external_call_id" field.
func ExternalCallIDLT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldExternalCallID, v))
}

// ExternalCallIDLTE applies the LTE predicate on the "external_call_id" field.
func ExternalCallIDLTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldExternalCallID, v))
}

// ExternalCallIDContains applies the Contains predicate on the "external_call_id" field.
func ExternalCallIDContains(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContains(FieldExternalCallID, v))
}

// ExternalCallIDHasPrefix applies the HasPrefix predicate on the "external_call_id" field.
func ExternalCallIDHasPrefix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasPrefix(FieldExternalCallID, v))
}

// ExternalCallIDHasSuffix applies the HasSuffix predicate on the "external_call_id" field.
func ExternalCallIDHasSuffix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasSuffix(FieldExternalCallID, v))
}

// ExternalCallIDIsNil applies the IsNil predicate on the "external_call_id" field.
func ExternalCallIDIsNil() predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIsNull(FieldExternalCallID))
}

// ExternalCallIDNotNil applies the NotNil predicate on the "external_call_id" field.
func ExternalCallIDNotNil() predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotNull(FieldExternalCallID))
}

// ExternalCallIDEqualFold applies the EqualFold predicate on the "external_call_id" field.
func ExternalCallIDEqualFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEqualFold(FieldExternalCallID, v))
}

// ExternalCallIDContainsFold applies the ContainsFold predicate on the "external_call_id" field.
func ExternalCallIDContainsFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContainsFold(FieldExternalCallID, v))
}

// ExternalSourceEQ applies the EQ predicate on the "external_source" field.
func ExternalSourceEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldExternalSource, v))
}

// ExternalSourceNEQ applies the NEQ predicate on the "external_source" field.
func ExternalSourceNEQ(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldExternalSource, v))
}

// ExternalSourceIn applies the In predicate on the "external_source" field.
func ExternalSourceIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldExternalSource, vs...))
}

// ExternalSourceNotIn applies the NotIn predicate on the "external_source" field.
func ExternalSourceNotIn(vs ...string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldExternalSource, vs...))
}

// ExternalSourceGT applies the GT predicate on the "external_source" field.
func ExternalSourceGT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldExternalSource, v))
}

// ExternalSourceGTE applies the GTE predicate on the "external_source" field.
func ExternalSourceGTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldExternalSource, v))
}

// ExternalSourceLT applies the LT predicate on the "external_source" field.
func ExternalSourceLT(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldExternalSource, v))
}

// ExternalSourceLTE applies the LTE predicate on the "external_source" field.
func ExternalSourceLTE(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldExternalSource, v))
}

// ExternalSourceContains applies the Contains predicate on the "external_source" field.
func ExternalSourceContains(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContains(FieldExternalSource, v))
}

// ExternalSourceHasPrefix applies the HasPrefix predicate on the "external_source" field.
func ExternalSourceHasPrefix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasPrefix(FieldExternalSource, v))
}

// ExternalSourceHasSuffix applies the HasSuffix predicate on the "external_source" field.
func ExternalSourceHasSuffix(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldHasSuffix(FieldExternalSource, v))
}

// ExternalSourceIsNil applies the IsNil predicate on the "external_source" field.
func ExternalSourceIsNil() predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIsNull(FieldExternalSource))
}

// ExternalSourceNotNil applies the NotNil predicate on the "external_source" field.
func ExternalSourceNotNil() predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotNull(FieldExternalSource))
}

// ExternalSourceEqualFold applies the EqualFold predicate on the "external_source" field.
func ExternalSourceEqualFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEqualFold(FieldExternalSource, v))
}

// ExternalSourceContainsFold applies the ContainsFold predicate on the "external_source" field.
func ExternalSourceContainsFold(v string) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldContainsFold(FieldExternalSource, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SalesContact {
	return predicate.SalesContact(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.SalesContact {
	return predicate.SalesContact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.SalesContact {
	return predicate.SalesContact(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SalesContact) predicate.SalesContact {
	return predicate.SalesContact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SalesContact) predicate.SalesContact {
	return predicate.SalesContact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SalesContact) predicate.SalesContact {
	return predicate.SalesContact(sql.NotPredicates(p))
}
