package vdom

import (
	"fmt"

	"github.com/delaneyj/vueparty/internal/logging"
)

func directivesModule(p *Patcher) Module {
	update := func(old, vnode *VNode) {
		p.updateDirectives(old, vnode)
	}
	return Module{
		Name:   "directives",
		Create: update,
		Update: update,
		Destroy: func(vnode *VNode) {
			p.updateDirectives(vnode, emptyVNode)
		},
	}
}

func dataDirectives(vnode *VNode) []Directive {
	if vnode.Data == nil {
		return nil
	}
	return vnode.Data.Directives
}

func directiveKey(dir *Directive) string {
	return dir.Name + "." + dir.Arg
}

func indexDirectives(dirs []Directive) map[string]*Directive {
	if len(dirs) == 0 {
		return nil
	}
	m := make(map[string]*Directive, len(dirs))
	for i := range dirs {
		m[directiveKey(&dirs[i])] = &dirs[i]
	}
	return m
}

func (p *Patcher) updateDirectives(old, vnode *VNode) {
	newList := dataDirectives(vnode)
	oldList := dataDirectives(old)
	if newList == nil && oldList == nil {
		return
	}
	isCreate := old == emptyVNode
	oldDirs := indexDirectives(oldList)

	var dirsWithInsert []*Directive
	var dirsWithPostpatch []*Directive

	for i := range newList {
		dir := &newList[i]
		if dir.Def == nil {
			continue
		}
		oldDir := oldDirs[directiveKey(dir)]
		if oldDir == nil {
			p.callDirectiveHook(dir, "bind", dir.Def.Bind, vnode, old)
			if dir.Def.Inserted != nil {
				dirsWithInsert = append(dirsWithInsert, dir)
			}
			continue
		}
		dir.OldValue = oldDir.Value
		p.callDirectiveHook(dir, "update", dir.Def.Update, vnode, old)
		if dir.Def.ComponentUpdated != nil {
			dirsWithPostpatch = append(dirsWithPostpatch, dir)
		}
	}

	if len(dirsWithInsert) > 0 {
		callInsert := func(vn *VNode) {
			for _, dir := range dirsWithInsert {
				p.callDirectiveHook(dir, "inserted", dir.Def.Inserted, vn, old)
			}
		}
		if isCreate {
			mergeInsertHook(vnode, callInsert)
		} else {
			callInsert(vnode)
		}
	}
	if len(dirsWithPostpatch) > 0 {
		mergePostpatchHook(vnode, func(o, vn *VNode) {
			for _, dir := range dirsWithPostpatch {
				p.callDirectiveHook(dir, "componentUpdated", dir.Def.ComponentUpdated, vn, o)
			}
		})
	}

	if !isCreate {
		newDirs := indexDirectives(newList)
		for i := range oldList {
			oldDir := &oldList[i]
			if oldDir.Def == nil {
				continue
			}
			if _, kept := newDirs[directiveKey(oldDir)]; !kept {
				p.callDirectiveHook(oldDir, "unbind", oldDir.Def.Unbind, old, old)
			}
		}
	}
}

// callDirectiveHook runs one directive callback, converting a panic into a
// routed error so a broken directive cannot unwind the whole patch.
func (p *Patcher) callDirectiveHook(dir *Directive, name string, hook func(Node, *Directive, *VNode, *VNode), vnode, old *VNode) {
	if hook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := recoveredError(r)
			context := fmt.Sprintf("directive %s %s hook", dir.Name, name)
			if p.onHookError != nil {
				p.onHookError(err, vnode, context)
				return
			}
			p.logger.Error("directive hook panicked",
				logging.String("directive", dir.Name),
				logging.String("hook", name),
				logging.Error(err))
		}
	}()
	hook(vnode.Elm, dir, vnode, old)
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
