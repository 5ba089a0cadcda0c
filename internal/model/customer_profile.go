package model

import (
    "strings"
    "time"
)

// CustomerProfile stores clinic-specific information about a customer
// beyond the login account: the national ID used for identification at
// the front desk, contact details and a coarse medical history.  Each
// user has at most one profile (users.id is unique here) and the row
// cascades away with the user.
//
// Fields:
//  ID                 – primary key identifier.
//  UserID             – owning user (unique, one profile per user).
//  NationalID         – unique national identification number (max 15 chars).
//  Address            – residential address.
//  HouseNumber        – house or apartment number (max 15 chars).
//  HasMedicalHistory  – whether the customer reported a medical history.
//  HasDrugHistory     – whether the customer reported drug usage history.
//  PrimaryPhysician   – name of the primary physician (may be blank).
//  IsPremium          – premium status flag.
//  OfflineAppointments – number of appointments booked at the desk.
//  LastVisitDate      – date of the most recent visit (nullable).
//  CreatedAt          – creation timestamp.
//  UpdatedAt          – last update timestamp.
type CustomerProfile struct {
    ID                  uint64     // customer_profiles.id
    UserID              uint64     // customer_profiles.user_id
    NationalID          string     // customer_profiles.national_id
    Address             string     // customer_profiles.address
    HouseNumber         string     // customer_profiles.house_number
    HasMedicalHistory   bool       // customer_profiles.has_medical_history
    HasDrugHistory      bool       // customer_profiles.has_drug_history
    PrimaryPhysician    string     // customer_profiles.primary_physician
    IsPremium           bool       // customer_profiles.is_premium
    OfflineAppointments int64      // customer_profiles.offline_appointments
    LastVisitDate       *time.Time // customer_profiles.last_visit_date (nullable DATE)
    CreatedAt           time.Time  // customer_profiles.created_at
    UpdatedAt           time.Time  // customer_profiles.updated_at
}

// Validate checks the profile's self-consistency before insert or update.
func (p *CustomerProfile) Validate() error {
    if p.UserID == 0 {
        return invalid("user_id", "user is required")
    }
    if strings.TrimSpace(p.NationalID) == "" {
        return invalid("national_id", "national id cannot be empty")
    }
    if len(p.NationalID) > 15 {
        return invalid("national_id", "national id cannot exceed 15 characters")
    }
    if p.OfflineAppointments < 0 {
        return invalid("offline_appointments", "offline appointments cannot be negative")
    }
    return nil
}
