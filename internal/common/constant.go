package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the session
// token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ServiceName is the name under which the repository is published by the
// server and looked up by clients.
const ServiceName = "sos.Repository"
