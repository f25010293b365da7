// Package kernel holds the value objects shared by every shipdesk domain package.
// Today that is UUID, the identifier given to each desk (view session).
package kernel
