package conf

// BackendVersion current version of the backend
const BackendVersion = "1.2.1"
