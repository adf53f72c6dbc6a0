package config

// GcpCloudProvider represents Google Cloud Platform cloud provider
const GcpCloudProvider = "gcp"
