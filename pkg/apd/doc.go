// Package apd describes the shape of the APD review workflow: the statuses a
// document moves through and the three-step progress track shown for each.
//
//	draft     -> Drafting (started)                         action "Open"
//	in review -> Submitted (done), Reviewing (started)      action "View"
//	reviewed  -> Submitted, Reviewed (done)                 action "View"
//	approved  -> Submitted, Reviewed, Approved (done)       action "Approval letter"
//
// Approval rules themselves live on the server.
package apd
