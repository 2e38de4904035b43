// Package session implements the client-side authentication lifecycle:
// the session and profile reducers, the Controller that runs login, logout,
// session check and profile edit flows, and a Store that applies events and
// publishes snapshots to observers.
//
// Flows never return errors. Every outcome is an Event handed to a
// Dispatcher, and the Store folds events into state:
//
//	store := session.NewStore()
//	ctrl := session.NewController(client, tokens, store.Dispatch)
//
//	sub := store.Subscribe(ctx)
//	go func() {
//	    for msg := range sub.Receive(ctx) {
//	        fmt.Println(msg.Data.Event, msg.Data.Session.Name())
//	    }
//	}()
//
//	ctrl.Login(ctx, "jane", "secret")
//	// LOGIN_REQUEST authenticating
//	// LOGIN_SUCCESS authenticated
//
// Session transitions:
//
//	any             LOGIN_REQUEST, AUTH_CHECK_REQUEST -> Authenticating
//	Authenticating  LOGIN_SUCCESS, AUTH_CHECK_SUCCESS -> Authenticated
//	Authenticating  LOGIN_FAILURE                     -> Failed
//	Authenticating  AUTH_CHECK_FAILURE                -> Unauthenticated
//	any             LOGOUT_SUCCESS                    -> Unauthenticated
//
// Any other event leaves the session state as it is. Profile edit events
// only touch the profile slice.
//
// Concurrent flows are not fenced: terminal events are applied in the order
// they arrive. Race bounds a flow with a deadline for callers that need one.
package session
