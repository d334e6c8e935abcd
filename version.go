package sec4dev

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

// UserAgent is sent with every request.
const UserAgent = "sec4dev-go/" + Version
