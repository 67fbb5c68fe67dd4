package urls

// Project is the source repository.
const Project = "https://github.com/muurk/clipbridge"

// Releases lists prebuilt binaries for every supported platform,
// which is what a second device needs to join.
const Releases = "https://github.com/muurk/clipbridge/releases/latest"

// GettingStarted is the quick start guide for new users.
const GettingStarted = "https://muurk.github.io/clipbridge/getting-started/"

// JoinDefault is encoded in the Connect screen's code when no join_url
// is configured.
const JoinDefault = Releases
