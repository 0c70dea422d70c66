package finder

import "golang.org/x/sys/unix"

// Unprivileged processes may only write the user namespace. Samba and
// netatalk store FinderInfo under this name.
const attrName = "user.com.apple.FinderInfo"

const errNoAttr = unix.ENODATA
