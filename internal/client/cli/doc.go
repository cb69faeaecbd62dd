// Package cli is the interactive terminal front-end of the carpool client and
// its composition root.
//
// NewApp wires configuration, the local session database, the HTTP client,
// the domain services and the session store. Run restores the persisted
// session before accepting any command, then starts a read–eval–print loop.
//
// Commands
//
//	Always available:
//	  help, register, login, exit | quit
//
//	Logged in:
//	  profile, editprofile, users <name>, logout
//	  trips, trip <id>, addtrip, canceltrip <id>
//	  vehicles, addvehicle, editvehicle <id>, deletevehicle <id>
//	  bookings, book <tripId>, confirm <id>, reject <id>, cancelbooking <id>
//
// When the server rejects the stored credential the session is dropped and
// the user is told to log in again.
package cli
