// Package technician provides the Technician aggregate: a service provider's
// profile with a verification flag and a running average review rating.
//
// Only verified technicians are eligible for job offers. The average rating is
// maintained incrementally as reviews arrive, so it never requires scanning
// historical reviews.
package technician
